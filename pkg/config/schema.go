package config

// fileConfig is the on-disk shape shared by every parser. Optional scalars are
// pointers so an absent key keeps its default.
type fileConfig struct {
	Extension       *string      `json:"extension,omitempty" yaml:"extension,omitempty" hcl:"extension,optional"`
	Exclude         []string     `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	ContinueOnError *bool        `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty" hcl:"continue_on_error,optional"`
	Format          *formatBlock `json:"format,omitempty" yaml:"format,omitempty" hcl:"format,block"`
	Rules           []ruleBlock  `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
}

type formatBlock struct {
	TrimTrailingWhitespace *bool `json:"trim_trailing_whitespace,omitempty" yaml:"trim_trailing_whitespace,omitempty" hcl:"trim_trailing_whitespace,optional"`
	FinalNewline           *bool `json:"final_newline,omitempty" yaml:"final_newline,omitempty" hcl:"final_newline,optional"`
	MaxBlankLines          *int  `json:"max_blank_lines,omitempty" yaml:"max_blank_lines,omitempty" hcl:"max_blank_lines,optional"`
}

type ruleBlock struct {
	From  string `json:"from" yaml:"from" hcl:"from"`
	To    string `json:"to" yaml:"to" hcl:"to"`
	Files string `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
}

// toConfig overlays the values present in the file on top of Default()
func (fc *fileConfig) toConfig() *Config {
	cfg := Default()

	// an empty extension keeps the default
	if fc.Extension != nil && *fc.Extension != "" {
		cfg.Extension = *fc.Extension
	}
	cfg.Exclude = append(cfg.Exclude, fc.Exclude...)
	if fc.ContinueOnError != nil {
		cfg.ContinueOnError = *fc.ContinueOnError
	}

	if fc.Format != nil {
		if fc.Format.TrimTrailingWhitespace != nil {
			cfg.Format.TrimTrailingWhitespace = *fc.Format.TrimTrailingWhitespace
		}
		if fc.Format.FinalNewline != nil {
			cfg.Format.FinalNewline = *fc.Format.FinalNewline
		}
		if fc.Format.MaxBlankLines != nil {
			cfg.Format.MaxBlankLines = *fc.Format.MaxBlankLines
		}
	}

	for _, r := range fc.Rules {
		cfg.Rules = append(cfg.Rules, Rule{From: r.From, To: r.To, Files: r.Files})
	}

	return cfg
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/lktk/pkg/discover"
	"github.com/walteh/lktk/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule is a plain string replacement applied before normalization
type Rule struct {
	From  string // Text to replace
	To    string // Replacement text
	Files string // Optional doublestar glob restricting the rule
}

// 🧹 FormatArgs configures whitespace normalization
type FormatArgs struct {
	TrimTrailingWhitespace bool
	FinalNewline           bool
	MaxBlankLines          int
}

// 📚 Config represents the complete configuration
type Config struct {
	Extension       string     // Suffix of the files to format
	Exclude         []string   // Doublestar patterns of paths to leave alone
	ContinueOnError bool       // Keep going after a file fails
	Format          FormatArgs // Normalization options
	Rules           []Rule     // Replacement rules

	location string
}

// 🏭 Default returns the configuration used when no config file exists
func Default() *Config {
	n := text.DefaultNormalizer()
	return &Config{
		Extension: discover.DefaultExtension,
		Format: FormatArgs{
			TrimTrailingWhitespace: n.TrimTrailingWhitespace,
			FinalNewline:           n.FinalNewline,
			MaxBlankLines:          n.MaxBlankLines,
		},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if discover.Suffix("x"+cfg.Extension) != cfg.Extension {
		return errors.Errorf("extension %q must be a single suffix such as %q", cfg.Extension, discover.DefaultExtension)
	}

	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude: invalid pattern %q", pattern)
		}
	}

	if cfg.Format.MaxBlankLines < 0 {
		return errors.Errorf("format.max_blank_lines must not be negative")
	}

	if err := text.NewSimpleTextReplacer().ValidateRules(cfg.ReplacementRules()); err != nil {
		return errors.Errorf("rules: %w", err)
	}

	return nil
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔧 DiscoverOptions returns the discovery options described by the config
func (cfg *Config) DiscoverOptions() discover.Options {
	return discover.Options{
		Extension: cfg.Extension,
		Exclude:   cfg.Exclude,
	}
}

// Normalizer returns the whitespace normalizer described by the config
func (cfg *Config) Normalizer() text.Normalizer {
	return text.Normalizer{
		TrimTrailingWhitespace: cfg.Format.TrimTrailingWhitespace,
		FinalNewline:           cfg.Format.FinalNewline,
		MaxBlankLines:          cfg.Format.MaxBlankLines,
	}
}

// ReplacementRules converts the configured rules for the text package
func (cfg *Config) ReplacementRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, text.ReplacementRule{
			FromText:       r.From,
			ToText:         r.To,
			FileFilterGlob: r.Files,
		})
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.location
	if src == "" {
		src = "defaults"
	}
	exclude := "none"
	if len(cfg.Exclude) > 0 {
		exclude = strings.Join(cfg.Exclude, ",")
	}
	return fmt.Sprintf("%s: extension=%s exclude=%s rules=%d", src, cfg.Extension, exclude, len(cfg.Rules))
}

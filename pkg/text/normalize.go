package text

import (
	"strings"
)

// 🧹 Normalizer rewrites whitespace without looking at what the text means.
// Every option is idempotent, so normalizing twice equals normalizing once.
type Normalizer struct {
	// TrimTrailingWhitespace removes spaces and tabs at the end of every line
	TrimTrailingWhitespace bool

	// FinalNewline makes non-empty content end with exactly one newline
	FinalNewline bool

	// MaxBlankLines caps runs of consecutive blank lines. Zero disables the cap.
	MaxBlankLines int
}

// DefaultNormalizer returns the normalizer used when nothing is configured
func DefaultNormalizer() Normalizer {
	return Normalizer{
		TrimTrailingWhitespace: true,
		FinalNewline:           true,
		MaxBlankLines:          1,
	}
}

// Normalize applies the configured options to content. Line endings are
// always converted to "\n".
func (n Normalizer) Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")

	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if n.TrimTrailingWhitespace {
			line = strings.TrimRight(line, " \t")
		}

		if strings.TrimSpace(line) == "" {
			blanks++
			if n.MaxBlankLines > 0 && blanks > n.MaxBlankLines {
				continue
			}
		} else {
			blanks = 0
		}

		out = append(out, line)
	}

	result := strings.Join(out, "\n")

	if n.FinalNewline {
		result = strings.TrimRight(result, "\n")
		if strings.TrimSpace(result) == "" {
			return ""
		}
		result += "\n"
	}

	return result
}

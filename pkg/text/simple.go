package text

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using basic string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, file string, content string, rules []ReplacementRule) (*ReplacementResult, error) {
	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	current := content
	for i, rule := range rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		ok, err := appliesTo(rule, file)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		if !ok {
			continue
		}

		n := strings.Count(current, rule.FromText)
		if n == 0 {
			continue
		}

		current = strings.ReplaceAll(current, rule.FromText, rule.ToText)
		result.ReplacementCount += n
		zerolog.Ctx(ctx).Trace().Str("file", file).Int("rule", i).Int("count", n).Msg("applied replacement")
	}

	result.ModifiedContent = current
	result.WasModified = current != content
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// appliesTo reports whether rule is scoped to file
func appliesTo(rule ReplacementRule, file string) (bool, error) {
	if rule.FileFilterGlob == "" {
		return true, nil
	}

	target := filepath.ToSlash(file)
	if !strings.Contains(rule.FileFilterGlob, "/") {
		target = path.Base(target)
	}

	ok, err := doublestar.Match(rule.FileFilterGlob, target)
	if err != nil {
		return false, errors.Errorf("matching %q: %w", rule.FileFilterGlob, err)
	}
	return ok, nil
}

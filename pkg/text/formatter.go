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

package text

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrBinaryContent is returned for content that contains a NUL byte
var ErrBinaryContent = errors.Base("binary content")

// 🎯 Formatter is the default file transformation: configured replacements
// first, whitespace normalization second. It holds no state between calls.
type Formatter struct {
	rules      []ReplacementRule
	normalizer Normalizer
	replacer   TextReplacer
}

// 🏭 NewFormatter validates rules and creates a Formatter
func NewFormatter(rules []ReplacementRule, normalizer Normalizer) (*Formatter, error) {
	replacer := NewSimpleTextReplacer()
	if err := replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Formatter{
		rules:      rules,
		normalizer: normalizer,
		replacer:   replacer,
	}, nil
}

// Transform rewrites the content of the file at path
func (f *Formatter) Transform(ctx context.Context, path string, content string) (string, error) {
	if strings.IndexByte(content, 0) >= 0 {
		return "", errors.WithStack(ErrBinaryContent)
	}

	result, err := f.replacer.ReplaceText(ctx, path, content, f.rules)
	if err != nil {
		return "", errors.Errorf("replacing text: %w", err)
	}

	if result.WasModified {
		zerolog.Ctx(ctx).Debug().
			Str("file", path).
			Int("replacements", result.ReplacementCount).
			Msg("replacement rules applied")
	}

	return f.normalizer.Normalize(result.ModifiedContent), nil
}

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

package status

import (
	"github.com/fatih/color"
)

// 🎨 ColorFileFormatter wraps another formatter and colors its output
type ColorFileFormatter struct {
	base FileFormatter
}

// NewColorFileFormatter creates a ColorFileFormatter around base.
// A nil base falls back to the DefaultFileFormatter.
func NewColorFileFormatter(base FileFormatter) *ColorFileFormatter {
	if base == nil {
		base = NewDefaultFileFormatter()
	}
	return &ColorFileFormatter{base: base}
}

// 🎯 FormatOutcome colors the whole notice by status
func (f *ColorFileFormatter) FormatOutcome(o Outcome) string {
	msg := f.base.FormatOutcome(o)
	if o.Modified {
		return color.YellowString("%s", msg)
	}
	return color.HiBlackString("%s", msg)
}

// FormatSummary renders the summary in bold
func (f *ColorFileFormatter) FormatSummary(s Summary) string {
	return color.New(color.Bold).Sprint(f.base.FormatSummary(s))
}

// FormatError renders failures in red
func (f *ColorFileFormatter) FormatError(path string, err error) string {
	return color.RedString("%s", f.base.FormatError(path, err))
}

var _ FileFormatter = (*ColorFileFormatter)(nil)
var _ FileFormatter = (*DefaultFileFormatter)(nil)

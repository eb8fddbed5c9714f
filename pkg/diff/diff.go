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

// Package diff renders a header-less unified diff between two snapshots of a
// text and tags every line as an addition, a deletion or context.
//
// Nothing here prints: callers decide how a tagged line is styled.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines kept around each change
const contextLines = 3

// 🏷️ Kind classifies a diff line by its leading marker
type Kind int

const (
	KindContext  Kind = iota // context lines, hunk headers and empty lines
	KindAddition             // lines starting with '+'
	KindDeletion             // lines starting with '-'
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindAddition:
		return "addition"
	case KindDeletion:
		return "deletion"
	default:
		return "context"
	}
}

// 📄 Line is one line of a unified diff. Text keeps its leading marker.
type Line struct {
	Kind Kind
	Text string
}

// 🔍 Classify tags a raw unified diff line by its first character
func Classify(text string) Kind {
	switch {
	case len(text) == 0:
		return KindContext
	case text[0] == '+':
		return KindAddition
	case text[0] == '-':
		return KindDeletion
	default:
		return KindContext
	}
}

// 🎯 Render computes the unified diff of before and after.
//
// The "---"/"+++" file header pair is always dropped. Equal inputs produce an
// empty result.
func Render(before, after string) []Line {
	ud := difflib.UnifiedDiff{
		A:        terminate(SplitLines(before)),
		B:        terminate(SplitLines(after)),
		FromFile: "before",
		ToFile:   "after",
		Context:  contextLines,
	}

	// writing into a strings.Builder cannot fail
	out, _ := difflib.GetUnifiedDiffString(ud)
	if out == "" {
		return nil
	}

	raw := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// skip --- before / +++ after
	if len(raw) >= 2 {
		raw = raw[2:]
	}

	lines := make([]Line, 0, len(raw))
	for _, text := range raw {
		lines = append(lines, Line{Kind: Classify(text), Text: text})
	}
	return lines
}

// ✂️ SplitLines splits s on "\n", "\r\n" and "\r" without keeping the
// terminators. A trailing terminator does not produce an empty last line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// terminate appends the newline difflib expects at the end of every line
func terminate(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

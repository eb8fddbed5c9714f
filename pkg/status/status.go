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

// 📊 FileStatus represents what a run did to a single file
type FileStatus int

const (
	StatusUnknown  FileStatus = iota
	StatusModified            // Transformation changed the content
	StatusSkipped             // Content was already formatted
	StatusFailed              // File could not be processed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the per-file result of a run.
// It is created once per processed file and never mutated afterwards.
type Outcome struct {
	Path     string // Path as discovered
	Modified bool   // Whether the transformed content differs from the original
}

// Status maps the outcome onto a FileStatus
func (o Outcome) Status() FileStatus {
	if o.Modified {
		return StatusModified
	}
	return StatusSkipped
}

// 📈 Summary aggregates the outcomes of a run
type Summary struct {
	Modified int
	Skipped  int
	Failed   int
}

// Total returns the number of files the run touched, failures included
func (s Summary) Total() int {
	return s.Modified + s.Skipped + s.Failed
}

// 🧮 Summarize counts modified outcomes; every other outcome is skipped.
func Summarize(outcomes []Outcome, failed int) Summary {
	sum := Summary{Failed: failed}
	for _, o := range outcomes {
		if o.Modified {
			sum.Modified++
		}
	}
	sum.Skipped = len(outcomes) - sum.Modified
	return sum
}

package status

import (
	"fmt"
)

// FileFormatter defines how outcomes and summaries are rendered as notice lines
type FileFormatter interface {
	// FormatOutcome formats the per-file notice
	FormatOutcome(o Outcome) string

	// FormatSummary formats the one-line aggregate notice
	FormatSummary(s Summary) string

	// FormatError formats a per-file failure
	FormatError(path string, err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatOutcome formats an outcome as "<path> is modified" or "<path> is skipped"
func (f *DefaultFileFormatter) FormatOutcome(o Outcome) string {
	return fmt.Sprintf("%s is %s", o.Path, o.Status())
}

// FormatSummary formats the aggregate counts. Failures only show up when there are some.
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	if s.Failed > 0 {
		return fmt.Sprintf("%d files are modified, %d files are skipped, %d files failed.", s.Modified, s.Skipped, s.Failed)
	}
	return fmt.Sprintf("%d files are modified, %d files are skipped.", s.Modified, s.Skipped)
}

// FormatError formats a per-file failure
func (f *DefaultFileFormatter) FormatError(path string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s %s", path, StatusFailed)
	}
	return fmt.Sprintf("%s %s: %v", path, StatusFailed, err)
}

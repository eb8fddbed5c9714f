package pipeline

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidEncoding is returned for files whose content is not valid UTF-8
var ErrInvalidEncoding = errors.Base("content is not valid UTF-8")

// 🏷️ Stage names the step of the per-file cycle that failed
type Stage int

const (
	StageRead Stage = iota
	StageTransform
	StageWrite
)

// String returns a string representation of Stage
func (s Stage) String() string {
	switch s {
	case StageRead:
		return "reading"
	case StageTransform:
		return "transforming"
	case StageWrite:
		return "writing"
	default:
		return "processing"
	}
}

// ❌ FileError ties a failure to the file and the stage it happened in
type FileError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

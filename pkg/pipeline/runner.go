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

package pipeline

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/lktk/pkg/diff"
	"github.com/walteh/lktk/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎛️ Mode selects what happens to a file once it has been transformed
type Mode int

const (
	ModeWrite Mode = iota // Persist the transformed content
	ModeCheck             // Report a diff, never touch the file
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeWrite:
		return "write"
	case ModeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// 🔄 Transformer rewrites the content of a single file.
// Implementations must not depend on previously transformed files.
type Transformer interface {
	Transform(ctx context.Context, path string, content string) (string, error)
}

// TransformFunc adapts a plain function to Transformer
type TransformFunc func(ctx context.Context, path string, content string) (string, error)

// Transform implements Transformer
func (f TransformFunc) Transform(ctx context.Context, path string, content string) (string, error) {
	return f(ctx, path, content)
}

// 📢 Reporter receives everything a run has to say, in order
type Reporter interface {
	// FileOutcome is called once per processed file
	FileOutcome(ctx context.Context, outcome status.Outcome)
	// FileDiff is called in CHECK mode for every processed file, even when lines is empty
	FileDiff(ctx context.Context, path string, lines []diff.Line)
	// FileFailed is called for failures when the run continues on error
	FileFailed(ctx context.Context, path string, err error)
	// Summary is called once when every file has been handled
	Summary(ctx context.Context, summary status.Summary)
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Mode selects WRITE or CHECK
	Mode Mode
	// Transformer is applied to the content of every file
	Transformer Transformer
	// Reporter receives notices; nil discards them
	Reporter Reporter
	// ContinueOnError collects per-file failures instead of stopping at the first one
	ContinueOnError bool
}

// 🏃 Runner processes discovered files one at a time
type Runner struct {
	mode            Mode
	transformer     Transformer
	reporter        Reporter
	continueOnError bool
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Transformer == nil {
		return nil, errors.Errorf("transformer is required")
	}
	if opts.Mode != ModeWrite && opts.Mode != ModeCheck {
		return nil, errors.Errorf("unknown mode %d", opts.Mode)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	return &Runner{
		mode:            opts.Mode,
		transformer:     opts.Transformer,
		reporter:        reporter,
		continueOnError: opts.ContinueOnError,
	}, nil
}

// 📊 Result holds what a run produced. Outcomes are in processing order.
type Result struct {
	Mode     Mode
	Outcomes []status.Outcome
	Failures []*FileError
}

// Summary derives the aggregate counts
func (r *Result) Summary() status.Summary {
	return status.Summarize(r.Outcomes, len(r.Failures))
}

// CheckFailed reports whether a CHECK run found files that need formatting
func (r *Result) CheckFailed() bool {
	return r.Mode == ModeCheck && r.Summary().Modified > 0
}

// ExitCode maps the result onto the process exit status
func (r *Result) ExitCode() int {
	if r.CheckFailed() {
		return 1
	}
	return 0
}

// 🎯 Run processes files in order.
//
// In fail-fast mode the first failure is returned together with the outcomes
// recorded so far, and no summary is reported. With ContinueOnError every
// failure is reported, the summary is reported, and the joined failures are
// returned with the complete result.
func (r *Runner) Run(ctx context.Context, files []string) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("mode", r.mode.String()).Int("files", len(files)).Msg("starting run")

	result := &Result{
		Mode:     r.mode,
		Outcomes: make([]status.Outcome, 0, len(files)),
	}

	for _, file := range files {
		outcome, err := r.processFile(ctx, file)
		if err != nil {
			if !r.continueOnError {
				return result, errors.WithStack(err)
			}

			logger.Debug().Err(err).Str("file", file).Msg("continuing after failure")
			result.Failures = append(result.Failures, err)
			r.reporter.FileFailed(ctx, file, err)
			continue
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	summary := result.Summary()
	r.reporter.Summary(ctx, summary)

	logger.Debug().
		Int("modified", summary.Modified).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Int("total", summary.Total()).
		Msg("run complete")

	if len(result.Failures) > 0 {
		errs := make([]error, 0, len(result.Failures))
		for _, f := range result.Failures {
			errs = append(errs, f)
		}
		return result, errors.Join(errs...)
	}

	return result, nil
}

// 📄 processFile runs the read/transform/compare/report cycle for one file
func (r *Runner) processFile(ctx context.Context, file string) (status.Outcome, *FileError) {
	zerolog.Ctx(ctx).Debug().Str("file", file).Msg("formatting")

	before, err := readFile(file)
	if err != nil {
		return status.Outcome{}, &FileError{Path: file, Stage: StageRead, Err: err}
	}

	after, err := r.transformer.Transform(ctx, file, before)
	if err != nil {
		return status.Outcome{}, &FileError{Path: file, Stage: StageTransform, Err: err}
	}

	outcome := status.Outcome{
		Path:     file,
		Modified: before != after,
	}
	r.reporter.FileOutcome(ctx, outcome)

	switch r.mode {
	case ModeCheck:
		r.reporter.FileDiff(ctx, file, diff.Render(before, after))
	case ModeWrite:
		// unchanged files are left alone so their mtime is preserved
		if outcome.Modified {
			if err := writeFile(file, after); err != nil {
				return status.Outcome{}, &FileError{Path: file, Stage: StageWrite, Err: err}
			}
		}
	}

	return outcome, nil
}

// 📥 readFile reads the whole file and checks it is text
func readFile(file string) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if !utf8.Valid(content) {
		return "", errors.WithStack(ErrInvalidEncoding)
	}
	return string(content), nil
}

// 💾 writeFile overwrites the file in place. An existing file keeps its mode.
func writeFile(file string, content string) error {
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// nopReporter discards every notice
type nopReporter struct{}

func (nopReporter) FileOutcome(context.Context, status.Outcome) {}
func (nopReporter) FileDiff(context.Context, string, []diff.Line) {}
func (nopReporter) FileFailed(context.Context, string, error) {}
func (nopReporter) Summary(context.Context, status.Summary) {}

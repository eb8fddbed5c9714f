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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/lktk/pkg/diff"
	"github.com/walteh/lktk/pkg/status"
)

// 🎯 Logger writes user facing notices to the console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger. Notices go to console, structured events to zlog.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewColorFileFormatter(nil),
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context.
// Without one, notices are discarded.
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return New(io.Discard, zerolog.Nop())
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 FileOutcome prints "<path> is modified" or "<path> is skipped"
func (l *Logger) FileOutcome(ctx context.Context, outcome status.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatOutcome(outcome))

	l.zlog.Debug().
		Str("file", outcome.Path).
		Str("status", outcome.Status().String()).
		Msg("file processed")
}

// 📝 FileDiff prints the hunks of a file, additions in green and deletions in red
func (l *Logger) FileDiff(ctx context.Context, path string, lines []diff.Line) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range lines {
		fmt.Fprintln(l.console, colorize(line))
	}

	l.zlog.Trace().Str("file", path).Int("lines", len(lines)).Msg("diff reported")
}

// 📝 FileFailed prints a per-file failure when the run keeps going
func (l *Logger) FileFailed(ctx context.Context, path string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatError(path, err))
	l.zlog.Error().Err(err).Str("file", path).Msg("file failed")
}

// 📝 Summary prints the aggregate line
func (l *Logger) Summary(ctx context.Context, summary status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatSummary(summary))

	l.zlog.Info().
		Int("modified", summary.Modified).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("summary")
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 💥 Fatal prints an error banner for a failed command to w.
// The banner is plain text when color.NoColor is set.
func Fatal(w io.Writer, err error) {
	banner := pterm.Error.Sprint(err.Error())
	if color.NoColor {
		banner = pterm.RemoveColorFromString(banner)
	}
	fmt.Fprintln(w, banner)
}

func colorize(line diff.Line) string {
	switch line.Kind {
	case diff.KindAddition:
		return color.GreenString("%s", line.Text)
	case diff.KindDeletion:
		return color.RedString("%s", line.Text)
	default:
		return line.Text
	}
}

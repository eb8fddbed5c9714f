package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/lktk/cmd/lktk/opts"
	"github.com/walteh/lktk/pkg/discover"
	"github.com/walteh/lktk/pkg/log"
	"github.com/walteh/lktk/pkg/pipeline"
	"github.com/walteh/lktk/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrCheckFailed is returned when --check finds files that need formatting.
// The summary has already been printed, so callers exit without a message.
var ErrCheckFailed = errors.Base("files need formatting")

type formatFlags struct {
	check           bool
	continueOnError bool
	extension       string
	exclude         []string
}

// NewFormatCmd creates a new format command
func NewFormatCmd(opts *opts.RootOpts) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [PATH...]",
		Short: "Format LookML files in place",
		Long: `Format rewrites every LookML file found under the given paths.

Directories are searched recursively and files without the configured
extension (.lkml by default) are ignored. With --check nothing is written:
a diff is printed for every file that would change and the command exits
with status 1 when at least one would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)

			cfg := opts.Config
			if cmd.Flags().Changed("extension") {
				cfg.Extension = flags.extension
			}
			if cmd.Flags().Changed("continue-on-error") {
				cfg.ContinueOnError = flags.continueOnError
			}
			cfg.Exclude = append(cfg.Exclude, flags.exclude...)
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating flags: %w", err)
			}

			if err := discover.ValidateRoots(args); err != nil {
				return err
			}

			files, err := discover.Discover(ctx, args, cfg.DiscoverOptions())
			if err != nil {
				return errors.Errorf("discovering files: %w", err)
			}
			logger.Debug().Int("files", len(files)).Strs("roots", args).Msg("discovered files")

			reporter := log.FromContext(ctx)
			if len(files) == 0 && len(args) > 0 {
				reporter.Warningf("no %s files found", cfg.Extension)
			}

			formatter, err := text.NewFormatter(cfg.ReplacementRules(), cfg.Normalizer())
			if err != nil {
				return errors.Errorf("creating formatter: %w", err)
			}

			mode := pipeline.ModeWrite
			if flags.check {
				mode = pipeline.ModeCheck
			}

			runner, err := pipeline.New(pipeline.Options{
				Mode:            mode,
				Transformer:     formatter,
				Reporter:        reporter,
				ContinueOnError: cfg.ContinueOnError,
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			result, err := runner.Run(ctx, files)
			if err != nil {
				return errors.Errorf("formatting: %w", err)
			}

			if result.CheckFailed() {
				return errors.WithStack(ErrCheckFailed)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.check, "check", false, "report files that would change instead of writing them")
	cmd.Flags().BoolVar(&flags.continueOnError, "continue-on-error", false, "keep going after a file fails")
	cmd.Flags().StringVar(&flags.extension, "extension", discover.DefaultExtension, "file extension to format")
	cmd.Flags().StringArrayVar(&flags.exclude, "exclude", nil, "doublestar pattern to skip, relative to each path (repeatable)")

	return cmd
}

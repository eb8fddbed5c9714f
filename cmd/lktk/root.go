package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/lktk/cmd/lktk/commands"
	"github.com/walteh/lktk/cmd/lktk/opts"
	"github.com/walteh/lktk/pkg/config"
	"github.com/walteh/lktk/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile string
	logLevel   string
	debug      bool
}

// newRootCmd builds the command tree. Notices go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "lktk",
		Short:         "A toolkit for LookML projects",
		Long:          `lktk formats LookML (.lkml) files in place or checks that they are already formatted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog, err := newZerolog(stderr, flags)
			if err != nil {
				return err
			}
			ctx := zlog.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			wd, err := os.Getwd()
			if err != nil {
				return errors.Errorf("getting working directory: %w", err)
			}

			cfg, err := config.Resolve(ctx, flags.configFile, wd)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			zlog.Debug().
				Str("location", cfg.Location()).
				Str("config", cfg.String()).
				Msg("configuration loaded")

			rootOpts.Config = cfg
			cmd.SetContext(log.NewContext(ctx, log.New(cmd.OutOrStdout(), zlog)))
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewFormatCmd(rootOpts),
		commands.NewVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default: .lktk.{yaml,yml,hcl,json} in the working directory)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// newZerolog builds the stderr logger for the requested level.
// The global level is never touched.
func newZerolog(w io.Writer, flags *rootFlags) (zerolog.Logger, error) {
	level := zerolog.DebugLevel
	if !flags.debug {
		name := strings.ToLower(flags.logLevel)
		if name == "warning" {
			name = "warn"
		}
		parsed, err := zerolog.ParseLevel(name)
		if err != nil || name == "" {
			return zerolog.Nop(), errors.Errorf("invalid log level %q", flags.logLevel)
		}
		level = parsed
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}
	return zerolog.New(out).With().Timestamp().Logger().Level(level), nil
}

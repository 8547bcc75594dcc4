package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/normbridge"
	"github.com/bft-labs/normbridge/internal/cliconfig"
	"github.com/bft-labs/normbridge/pkg/log"
)

const longHelp = `Bridge a Macaulay2 session and the Normaliz solver.

normbridge reads a {{i1,...,ik},n} descriptor (default: input.txt), writes the
matching Normaliz input with one inhomogeneous congruence, runs normaliz, and
writes the Hilbert basis of the recession monoid as a Macaulay2 list
(default: output.m2). The descriptor is consumed and every <stem>.in/.out/...
solver file is removed when the run ends.

With no flags the fixed file names above are used in the current directory.`

var exampleUsage = strings.TrimSpace(`
  normbridge
  normbridge --work-dir /tmp/m2-session --solver /opt/normaliz/bin/normaliz
  normbridge --watch --keep-artifacts --log-level debug
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewConsoleLogger(zerolog.InfoLevel)

	root := &cobra.Command{
		Use:           "normbridge",
		Short:         "Run Normaliz on a Macaulay2 descriptor and return the Hilbert basis",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// NORMBRIDGE_* override the file but not explicit flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = logger.Level(level)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			bridgeLog := log.NewZerologAdapterWithLogger(logger)
			if cfg.Watch {
				return normbridge.Watch(ctx, cfg, bridgeLog)
			}
			return normbridge.Run(ctx, cfg, bridgeLog)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.normbridge/config.toml)")
	root.Flags().StringVar(&cfg.InputFile, "input", cfg.InputFile, "descriptor file, consumed after reading")
	root.Flags().StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Macaulay2 result file")
	root.Flags().StringVar(&cfg.WorkDir, "work-dir", cfg.WorkDir, "directory for solver files; relative input/output resolve here")
	root.Flags().StringVar(&cfg.SolverPath, "solver", cfg.SolverPath, "Normaliz executable")
	root.Flags().StringArrayVar(&cfg.SolverArgs, "solver-arg", cfg.SolverArgs, "extra argument passed to the solver before the input file (repeatable)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	root.Flags().BoolVar(&cfg.KeepArtifacts, "keep-artifacts", cfg.KeepArtifacts, "keep <stem>.in/.out/... after the run (debug)")
	root.Flags().BoolVar(&cfg.KeepDescriptor, "keep-descriptor", cfg.KeepDescriptor, "do not delete the descriptor after reading it")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "rerun whenever a new descriptor appears")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a descriptor change before running (watch mode)")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("normbridge")
		os.Exit(1)
	}
}

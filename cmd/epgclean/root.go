// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/ManuGH/epgclean/internal/config"
	"github.com/ManuGH/epgclean/internal/jobs"
	xglog "github.com/ManuGH/epgclean/internal/log"
	"github.com/ManuGH/epgclean/internal/normalize"
	"github.com/ManuGH/epgclean/internal/validate"
	"github.com/ManuGH/epgclean/internal/version"
	"github.com/spf13/cobra"
)

// options are the persistent flags. Non-empty values override file and environment.
type options struct {
	configPath string
	input      string
	output     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "epgclean",
		Short: "Clean up an XMLTV programme guide",
		Long: `epgclean reads an XMLTV guide, keeps the channels on the allow-list and
rewrites every programme into a uniform title and description:

  - sporting events become "Team A vs Team B" / "Team A at Team B"
  - episodic shows get an "S#E#" code
  - descriptions end with the air date as (MM/DD/YYYY)

Channels and programmes are written in allow-list order, then by start time.
Without a subcommand epgclean performs a single run.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML configuration file")
	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "source XMLTV guide (default "+config.DefaultInput+")")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "destination guide (default "+config.DefaultOutput+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newValidateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Normalise the guide once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd, opts)
		},
	}
}

func runOnce(cmd *cobra.Command, opts *options) error {
	cfg, _, err := loadConfig(opts)
	if err != nil {
		return err
	}
	setupLogging(cfg)
	defer func() { _ = xglog.Close() }()

	jobCfg, err := jobConfig(cfg)
	if err != nil {
		return err
	}
	sum, err := jobs.Run(cmd.Context(), jobCfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(sum))
	return nil
}

func newWatchCmd(opts *options) *cobra.Command {
	var debounce = jobs.DefaultDebounce

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run, then run again whenever the source guide or config changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loader, err := loadConfig(opts)
			if err != nil {
				return err
			}
			setupLogging(cfg)
			defer func() { _ = xglog.Close() }()

			return watch(cmd.Context(), cmd, opts, cfg, loader, debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", jobs.DefaultDebounce, "quiet period before a change triggers a run")
	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, opts *options, cfg config.AppConfig, loader *config.Loader, debounce time.Duration) error {
	logger := xglog.WithComponent("cli")
	holder := config.NewHolder(cfg, loader)

	runWith := func(ctx context.Context) error {
		current, err := opts.apply(holder.Get())
		if err != nil {
			return err
		}
		jobCfg, err := jobConfig(current)
		if err != nil {
			return err
		}
		sum, err := jobs.Run(ctx, jobCfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(sum))
		return nil
	}

	// A failed first run is not fatal: the source may not exist yet.
	if err := runWith(ctx); err != nil {
		logger.Warn().Err(err).Str(xglog.FieldEvent, "watch.initial_run_failed").Msg("initial run failed")
	}

	paths := []string{cfg.Input}
	configPath := ""
	if loader.Path() != "" {
		abs, err := filepath.Abs(loader.Path())
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		configPath = abs
		paths = append(paths, configPath)
	}

	return jobs.Watch(ctx, jobs.WatchOptions{
		Paths:    paths,
		Debounce: debounce,
		OnChange: func(ctx context.Context, changed []string) error {
			if configPath != "" && slices.Contains(changed, configPath) {
				if err := holder.Reload(ctx); err != nil {
					return err
				}
			}
			return runWith(ctx)
		},
	})
}

// loadConfig resolves defaults, file and environment, then applies flag overrides.
func loadConfig(opts *options) (config.AppConfig, *config.Loader, error) {
	loader := config.NewLoader(opts.configPath, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		return cfg, nil, err
	}
	cfg, err = opts.apply(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, loader, nil
}

func (o *options) apply(cfg config.AppConfig) (config.AppConfig, error) {
	if o.input == "" && o.output == "" && o.logLevel == "" {
		return cfg, nil
	}
	if o.input != "" {
		cfg.Input = o.input
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogging(cfg config.AppConfig) {
	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Service: "epgclean",
		Version: version.Version,
	})
}

// jobConfig compiles the allow-list and sports keywords for one run.
func jobConfig(cfg config.AppConfig) (jobs.Config, error) {
	table, err := cfg.ChannelTable()
	if err != nil {
		return jobs.Config{}, err
	}
	sports, err := normalize.NewSportsDetector(cfg.SportsKeywords)
	if err != nil {
		return jobs.Config{}, err
	}
	return jobs.Config{
		Input:         cfg.Input,
		Output:        cfg.Output,
		MaxInputBytes: cfg.MaxInputBytes,
		Workers:       cfg.Workers,
		MetricsFile:   cfg.MetricsFile,
		Channels:      table,
		Sports:        sports,
	}, nil
}

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file without running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader(file, version.Version).Load()
			if err != nil {
				var verr validate.ValidationError
				if errors.As(err, &verr) {
					for _, e := range verr.Errors() {
						fmt.Fprintf(cmd.ErrOrStderr(), "  - %s: %s\n", e.Field, e.Message)
					}
				}
				return fmt.Errorf("configuration error in %s: %w", file, err)
			}
			jc, err := jobConfig(cfg)
			if err != nil {
				return fmt.Errorf("configuration error in %s: %w", file, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d channels)\n", file, jc.Channels.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to YAML configuration file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

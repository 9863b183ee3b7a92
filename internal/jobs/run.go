// SPDX-License-Identifier: MIT

// Package jobs runs the guide pipeline: read, filter, normalize, order and write.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ManuGH/epgclean/internal/epg"
	xglog "github.com/ManuGH/epgclean/internal/log"
	"github.com/ManuGH/epgclean/internal/metrics"
	"github.com/ManuGH/epgclean/internal/normalize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Run performs one complete pass over the source guide and atomically replaces the
// output. Nothing is written when any stage fails. Events go to the logger carried
// by ctx, or to the base logger when there is none.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	parent := xglog.FromContext(ctx)
	runID := uuid.New().String()
	ctx = xglog.ContextWithRunID(ctx, runID)
	logger := xglog.WithContext(ctx, parent.With().Str(xglog.FieldComponent, "jobs").Logger())
	ctx = logger.WithContext(ctx)

	sum := &Summary{
		RunID:      runID,
		Input:      cfg.Input,
		Output:     cfg.Output,
		StartTime:  time.Now(),
		Categories: make(map[normalize.Category]int),
	}
	logger.Info().
		Str(xglog.FieldEvent, "run.start").
		Str(xglog.FieldInput, cfg.Input).
		Str(xglog.FieldOutput, cfg.Output).
		Msg("starting run")

	err := run(ctx, cfg, sum)

	sum.EndTime = time.Now()
	sum.Duration = sum.EndTime.Sub(sum.StartTime)
	metrics.RecordRun(sum.Duration, err)
	if cfg.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cfg.MetricsFile); merr != nil {
			logger.Warn().Err(merr).
				Str(xglog.FieldEvent, "metrics.write_failed").
				Str(xglog.FieldPath, cfg.MetricsFile).
				Msg("failed to write metrics textfile")
		}
	}

	if err != nil {
		logger.Error().Err(err).
			Str(xglog.FieldEvent, "run.failed").
			Dur("duration", sum.Duration).
			Msg("run failed")
		return nil, err
	}

	categories := zerolog.Dict()
	for _, c := range []normalize.Category{normalize.CategorySports, normalize.CategoryEpisodic, normalize.CategoryOther} {
		categories.Int(string(c), sum.Categories[c])
	}
	logger.Info().
		Str(xglog.FieldEvent, "run.success").
		Int(xglog.FieldChannels, sum.ChannelsKept).
		Int(xglog.FieldProgrammes, sum.ProgrammesEmitted).
		Int(xglog.FieldSkipped, sum.ProgrammesSkipped).
		Dict(xglog.FieldCategories, categories).
		Dur("duration", sum.Duration).
		Msg("run completed")
	return sum, nil
}

func run(ctx context.Context, cfg Config, sum *Summary) error {
	if err := checkPaths(cfg.Input, cfg.Output); err != nil {
		metrics.IncRunFailure("read")
		return err
	}
	if cfg.Channels == nil {
		return errors.New("run config has no channel table")
	}

	lock := flock.New(cfg.Output + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		metrics.IncRunFailure("lock")
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		metrics.IncRunFailure("lock")
		return fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	src, err := readGuide(cfg.Input, cfg.MaxInputBytes)
	if err != nil {
		metrics.IncRunFailure("read")
		return err
	}
	sum.ChannelsRead = len(src.Channels)
	sum.ProgrammesRead = len(src.Programmes)

	out, err := normalizeGuide(ctx, src, cfg, sum)
	if err != nil {
		metrics.IncRunFailure("normalize")
		return err
	}

	epg.Order(out, cfg.Channels)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeXMLTV(ctx, cfg.Output, out); err != nil {
		metrics.IncRunFailure("write")
		return err
	}
	xglog.FromContext(ctx).Info().
		Str(xglog.FieldEvent, "xmltv.write").
		Str(xglog.FieldPath, cfg.Output).
		Int(xglog.FieldChannels, len(out.Channels)).
		Int(xglog.FieldProgrammes, len(out.Programmes)).
		Msg("guide written")

	recordSummary(sum)
	return nil
}

func checkPaths(input, output string) error {
	absIn, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOut, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if absIn == absOut {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, output)
	}
	info, err := os.Stat(absIn)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, input)
	}
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory", input)
	}
	return nil
}

func readGuide(path string, maxBytes int64) (*epg.TV, error) {
	// #nosec G304 -- the input path is provided by the operator via CLI/ENV
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	tv, err := epg.ReadXMLTV(f, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tv, nil
}

func recordSummary(sum *Summary) {
	metrics.AddProgrammes(metrics.OutcomeEmitted, sum.ProgrammesEmitted)
	metrics.AddProgrammes(metrics.OutcomeFiltered, sum.ProgrammesFiltered)
	metrics.RecordChannelsKept(sum.ChannelsKept)
	metrics.RecordDatesResolved(sum.DatesResolved)
	counts := make(map[string]int, len(sum.Categories))
	for c, n := range sum.Categories {
		counts[string(c)] = n
	}
	metrics.RecordCategories(counts)
}

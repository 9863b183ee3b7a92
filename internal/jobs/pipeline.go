// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/ManuGH/epgclean/internal/epg"
	xglog "github.com/ManuGH/epgclean/internal/log"
	"github.com/ManuGH/epgclean/internal/metrics"
	"github.com/ManuGH/epgclean/internal/normalize"
	"golang.org/x/sync/errgroup"
)

// progressEvery is how many composed programmes pass between run.progress events.
const progressEvery = 5000

type composed struct {
	out normalize.Output
	err error
}

// normalizeGuide builds the output document from src: allowed channels with mapped
// display names, and one composed programme per well-formed allowed programme.
// Records are composed in parallel into index-addressed slots, so the result does
// not depend on scheduling.
func normalizeGuide(ctx context.Context, src *epg.TV, cfg Config, sum *Summary) (*epg.TV, error) {
	logger := xglog.FromContext(ctx)
	table := cfg.Channels

	out := &epg.TV{Attrs: src.Attrs}
	for _, ch := range src.Channels {
		if !table.Allowed(ch.ID) {
			continue
		}
		out.Channels = append(out.Channels, table.ApplyDisplayName(ch))
	}
	sum.ChannelsKept = len(out.Channels)

	kept := make([]epg.Programme, 0, len(src.Programmes))
	for _, p := range src.Programmes {
		if table.Allowed(p.Channel) {
			kept = append(kept, p)
		}
	}
	sum.ProgrammesFiltered = len(src.Programmes) - len(kept)

	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	composer := normalize.NewComposer(cfg.Sports)
	results := make([]composed, len(kept))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range kept {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := composer.Compose(toInput(kept[i]))
			results[i] = composed{out: o, err: err}
			if n := done.Add(1); n%progressEvery == 0 {
				logger.Debug().
					Str(xglog.FieldEvent, "run.progress").
					Int64(xglog.FieldDone, n).
					Int(xglog.FieldTotal, len(kept)).
					Msg("normalizing programmes")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out.Programmes = make([]epg.Programme, 0, len(kept))
	for i, r := range results {
		if r.err != nil {
			sum.ProgrammesSkipped++
			metrics.IncProgramme(metrics.OutcomeSkipped)
			logger.Warn().Err(r.err).
				Str(xglog.FieldEvent, "programme.skipped").
				Str(xglog.FieldChannelID, kept[i].Channel).
				Str(xglog.FieldStart, kept[i].Start).
				Msg("skipping malformed programme")
			continue
		}
		sum.Categories[r.out.Category]++
		if r.out.Date != nil {
			sum.DatesResolved++
		}
		out.Programmes = append(out.Programmes, epg.NewProgramme(kept[i], r.out.Title, r.out.Description))
	}
	sum.ProgrammesEmitted = len(out.Programmes)
	return out, nil
}

func toInput(p epg.Programme) normalize.Input {
	in := normalize.Input{
		Channel:     p.Channel,
		Start:       p.Start,
		Title:       p.FirstTitle(),
		Subtitle:    p.FirstSubTitle(),
		Description: p.FirstDesc(),
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	if len(p.EpisodeNums) > 0 {
		in.Episodes = make([]normalize.EpisodeToken, len(p.EpisodeNums))
		for i, en := range p.EpisodeNums {
			in.Episodes[i] = normalize.EpisodeToken{System: en.System, Value: en.Value}
		}
	}
	return in
}

// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors updated by a guide run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Programme outcomes.
const (
	OutcomeEmitted  = "emitted"
	OutcomeSkipped  = "skipped"
	OutcomeFiltered = "filtered"
)

var (
	programmesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epgclean_programmes_total",
		Help: "Programmes processed by outcome",
	}, []string{"outcome"}) // outcome=emitted|skipped|filtered

	programmesByCategory = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "epgclean_programmes_by_category",
		Help: "Programmes emitted per category in the last run",
	}, []string{"category"}) // category=sports|episodic|other

	channelsKept = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgclean_channels_kept",
		Help: "Channels written in the last run",
	})

	datesResolved = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgclean_dates_resolved",
		Help: "Programmes with a resolved broadcast date in the last run",
	})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epgclean_runs_total",
		Help: "Guide runs by result",
	}, []string{"result"}) // result=success|failure

	runFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epgclean_run_failures_total",
		Help: "Failed runs by stage",
	}, []string{"stage"}) // stage=read|normalize|write|lock

	runDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "epgclean_run_duration_seconds",
		Help:    "Wall time of a complete guide run",
		Buckets: prometheus.DefBuckets,
	})

	lastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "epgclean_last_success_timestamp_seconds",
		Help: "Unix time of the last successful run",
	})
)

func IncProgramme(outcome string) { programmesTotal.WithLabelValues(outcome).Inc() }

func AddProgrammes(outcome string, n int) {
	programmesTotal.WithLabelValues(outcome).Add(float64(n))
}

// RecordCategories replaces the per-category gauges with the counts of one run.
func RecordCategories(counts map[string]int) {
	programmesByCategory.Reset()
	for category, n := range counts {
		programmesByCategory.WithLabelValues(category).Set(float64(n))
	}
}

func RecordChannelsKept(n int)   { channelsKept.Set(float64(n)) }
func RecordDatesResolved(n int)  { datesResolved.Set(float64(n)) }
func IncRunFailure(stage string) { runFailuresTotal.WithLabelValues(stage).Inc() }

// RecordRun records the outcome and duration of one run.
func RecordRun(duration time.Duration, err error) {
	runDurationSeconds.Observe(duration.Seconds())
	if err != nil {
		runsTotal.WithLabelValues("failure").Inc()
		return
	}
	runsTotal.WithLabelValues("success").Inc()
	lastSuccess.SetToCurrentTime()
}

// SPDX-License-Identifier: MIT

package jobs

import (
	"errors"
	"time"

	"github.com/ManuGH/epgclean/internal/epg"
	"github.com/ManuGH/epgclean/internal/normalize"
)

var (
	// ErrSourceNotFound is returned when the input guide does not exist.
	ErrSourceNotFound = errors.New("source guide not found")
	// ErrOutputIsInput is returned when the output path names the input file.
	ErrOutputIsInput = errors.New("output would overwrite input")
	// ErrLocked is returned when another run holds the output lock.
	ErrLocked = errors.New("output is locked by another run")
)

// Config holds everything a run needs. Channels and Sports are immutable and may be
// shared between runs.
type Config struct {
	Input         string
	Output        string
	MaxInputBytes int64
	Workers       int
	MetricsFile   string

	Channels *epg.ChannelTable
	Sports   *normalize.SportsDetector
}

// Summary reports what a run did.
type Summary struct {
	RunID     string
	Input     string
	Output    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	ChannelsRead int
	ChannelsKept int

	ProgrammesRead     int
	ProgrammesFiltered int // channel not on the allow-list
	ProgrammesSkipped  int // malformed
	ProgrammesEmitted  int

	Categories    map[normalize.Category]int
	DatesResolved int
}

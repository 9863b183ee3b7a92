// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ManuGH/epgclean/internal/jobs"
	"github.com/ManuGH/epgclean/internal/normalize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderSummary(sum *jobs.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("epgclean run " + sum.RunID)
	tw.AppendHeader(table.Row{"Metric", "Value"})

	count := func(n int) string { return strconv.Itoa(n) }
	tw.AppendRows([]table.Row{
		{"Input", sum.Input},
		{"Output", sum.Output},
		{"Channels kept", fmt.Sprintf("%d of %d", sum.ChannelsKept, sum.ChannelsRead)},
		{"Programmes read", count(sum.ProgrammesRead)},
		{"Filtered", count(sum.ProgrammesFiltered)},
		{"Skipped (malformed)", count(sum.ProgrammesSkipped)},
		{"Emitted", count(sum.ProgrammesEmitted)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Sports", count(sum.Categories[normalize.CategorySports])},
		{"Episodic", count(sum.Categories[normalize.CategoryEpisodic])},
		{"Other", count(sum.Categories[normalize.CategoryOther])},
		{"Dates resolved", count(sum.DatesResolved)},
	})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Duration", sum.Duration.Round(time.Millisecond).String()})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Zachkp/hustlr/config"
	"github.com/Zachkp/hustlr/tracking"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const recentVisits = 10

func printStats(ctx context.Context, cfg *config.Config, w io.Writer, limit int) error {
	store, err := tracking.Open(cfg.Tracking.DBPath, cfg.Tracking.Salt)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(ctx, limit)
	if err != nil {
		return err
	}
	recent, err := store.Recent(ctx, recentVisits)
	if err != nil {
		return err
	}
	return writeStats(w, stats, recent)
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{Borders: tw.BorderNone})),
		tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Formatting: tw.CellFormatting{Alignment: tw.AlignLeft}},
			Footer: tw.CellConfig{Formatting: tw.CellFormatting{Alignment: tw.AlignRight}},
		}),
	)
}

func writeStats(w io.Writer, stats *tracking.Stats, recent []tracking.Visit) error {
	summary := newTable(w)
	summary.Header("Metric", "Visits")
	rows := [][]string{
		{"total", strconv.FormatInt(stats.TotalVisits, 10)},
		{"unique visitors", strconv.FormatInt(stats.UniqueVisitors, 10)},
		{"today", strconv.FormatInt(stats.VisitsToday, 10)},
		{"last 7 days", strconv.FormatInt(stats.VisitsThisWeek, 10)},
	}
	for _, row := range rows {
		if err := summary.Append(row); err != nil {
			return fmt.Errorf("summary table: %w", err)
		}
	}
	if err := summary.Render(); err != nil {
		return fmt.Errorf("summary table: %w", err)
	}
	fmt.Fprintln(w)

	paths := newTable(w)
	paths.Header("Path", "Visits")
	var total int64
	for _, p := range stats.TopPaths {
		if err := paths.Append([]string{p.Path, strconv.FormatInt(p.Visits, 10)}); err != nil {
			return fmt.Errorf("paths table: %w", err)
		}
		total += p.Visits
	}
	paths.Footer("top paths", strconv.FormatInt(total, 10))
	if err := paths.Render(); err != nil {
		return fmt.Errorf("paths table: %w", err)
	}

	if len(recent) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	visits := newTable(w)
	visits.Header("Time", "Path", "Visitor")
	for _, v := range recent {
		if err := visits.Append([]string{v.Timestamp.Format(time.DateTime), v.Path, v.HashedIP}); err != nil {
			return fmt.Errorf("visits table: %w", err)
		}
	}
	if err := visits.Render(); err != nil {
		return fmt.Errorf("visits table: %w", err)
	}
	return nil
}

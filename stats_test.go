package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zachkp/hustlr/config"
	"github.com/Zachkp/hustlr/tracking"
)

func TestPrintStats(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Tracking: config.TrackingConfig{DBPath: filepath.Join(t.TempDir(), "visits.db"), Salt: "pepper"}}

	store, err := tracking.Open(cfg.Tracking.DBPath, cfg.Tracking.Salt)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"/", "/top5", "/top5"} {
		if err := store.Record(ctx, "10.0.0.1", "test", p); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	var buf bytes.Buffer
	if err := printStats(ctx, cfg, &buf, 5); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"unique visitors", "/top5", "last 7 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteStatsTables(t *testing.T) {
	stats := &tracking.Stats{
		TotalVisits:    42,
		UniqueVisitors: 7,
		VisitsToday:    3,
		VisitsThisWeek: 19,
		TopPaths:       []tracking.PathStat{{Path: "/get-started", Visits: 30}, {Path: "/top5", Visits: 12}},
	}
	var buf bytes.Buffer
	if err := writeStats(&buf, stats, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"42", "19", "/get-started", "30", "/top5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Visitor") || strings.Contains(out, "VISITOR") {
		t.Errorf("recent visits table printed without visits:\n%s", out)
	}
}

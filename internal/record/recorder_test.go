package record_test

import (
	"context"
	"testing"
	"time"

	"sysdash/internal/collector"
	"sysdash/internal/record"
)

func snapAt(at time.Time, cpu float64) *collector.Snapshot {
	return &collector.Snapshot{
		TakenAt: at,
		CPU:     collector.CPUStats{TotalPercent: cpu},
		Memory:  collector.MemoryStats{UsedPercent: 40, SwapUsedPercent: 5},
		Network: collector.NetworkStats{RecvPerSec: 1000, SentPerSec: 500},
	}
}

// End-to-end against a real in-memory DuckDB: insert, prune, query back.
func TestRecorderRoundTrip(t *testing.T) {
	ctx := context.Background()

	rec, err := record.Open("", record.WithRetention(60*time.Second))
	if err != nil {
		t.Fatalf("failed to open recorder: %v", err)
	}
	defer rec.Close()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		if err := rec.Record(ctx, snapAt(at, float64(10*i))); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	points, err := rec.Series(ctx, "cpu")
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("Expected 5 cpu points, got %d", len(points))
	}
	if points[0].Value != 0 || points[4].Value != 40 {
		t.Errorf("Expected time-ordered values 0..40, got first=%v last=%v",
			points[0].Value, points[4].Value)
	}
}

func TestRecorderPrunesOutsideRetention(t *testing.T) {
	ctx := context.Background()

	rec, err := record.Open("", record.WithRetention(30*time.Second))
	if err != nil {
		t.Fatalf("failed to open recorder: %v", err)
	}
	defer rec.Close()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	if err := rec.Record(ctx, snapAt(base, 1)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	// A sample two minutes later pushes the first one out of the window.
	if err := rec.Record(ctx, snapAt(base.Add(2*time.Minute), 2)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	n, err := rec.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 retained row after pruning, got %d", n)
	}

	points, err := rec.Series(ctx, "cpu")
	if err != nil {
		t.Fatalf("Series failed: %v", err)
	}
	if len(points) != 1 || points[0].Value != 2 {
		t.Errorf("Expected only the newer sample to survive, got %+v", points)
	}
}

func TestSeriesRejectsUnknownMetric(t *testing.T) {
	rec, err := record.Open("")
	if err != nil {
		t.Fatalf("failed to open recorder: %v", err)
	}
	defer rec.Close()

	if _, err := rec.Series(context.Background(), "uptime; DROP TABLE metrics"); err == nil {
		t.Error("Expected unknown metric name to be rejected")
	}
}

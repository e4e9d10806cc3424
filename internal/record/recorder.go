// Package record persists harvested metrics into an embedded DuckDB
// database, keeping a short rolling window for the dashboard graphs.
package record

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver

	"sysdash/internal/collector"
)

const schema = `
CREATE TABLE IF NOT EXISTS metrics (
	taken_at     TIMESTAMP NOT NULL,
	cpu_percent  DOUBLE NOT NULL,
	mem_percent  DOUBLE NOT NULL,
	swap_percent DOUBLE NOT NULL,
	net_recv_bps DOUBLE NOT NULL,
	net_sent_bps DOUBLE NOT NULL
)`

// Point is one recorded sample of a single metric.
type Point struct {
	At    time.Time
	Value float64
}

// Recorder writes one metrics row per harvest and prunes rows that fall out
// of the retention window.
type Recorder struct {
	db        *sql.DB
	retention time.Duration
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithRetention sets how long rows are kept. Zero or negative keeps the
// default of one minute.
func WithRetention(d time.Duration) Option {
	return func(r *Recorder) {
		if d > 0 {
			r.retention = d
		}
	}
}

// Open opens (or creates) the database at dsn and ensures the schema.
// An empty dsn opens an in-memory database.
func Open(dsn string, opts ...Option) (*Recorder, error) {
	r := &Recorder{retention: time.Minute}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// DuckDB is embedded; serial access is often safer/faster for writes
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create metrics table: %w", err)
	}

	r.db = db
	return r, nil
}

// Close releases database resources.
func (r *Recorder) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Record inserts one row for the snapshot and prunes everything older than
// the retention window relative to the snapshot's timestamp.
func (r *Recorder) Record(ctx context.Context, snap *collector.Snapshot) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO metrics (taken_at, cpu_percent, mem_percent, swap_percent, net_recv_bps, net_sent_bps)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.TakenAt,
		snap.CPU.TotalPercent,
		snap.Memory.UsedPercent,
		snap.Memory.SwapUsedPercent,
		snap.Network.RecvPerSec,
		snap.Network.SentPerSec,
	)
	if err != nil {
		return fmt.Errorf("failed to insert metrics row: %w", err)
	}

	cutoff := snap.TakenAt.Add(-r.retention)
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metrics WHERE taken_at < ?`, cutoff); err != nil {
		return fmt.Errorf("failed to prune metrics: %w", err)
	}
	return nil
}

// metric name -> column, closed set so Series can't be used for injection.
var metricColumns = map[string]string{
	"cpu":      "cpu_percent",
	"mem":      "mem_percent",
	"swap":     "swap_percent",
	"net_recv": "net_recv_bps",
	"net_sent": "net_sent_bps",
}

// Series returns the retained samples of one metric in time order. Valid
// names are cpu, mem, swap, net_recv and net_sent.
func (r *Recorder) Series(ctx context.Context, name string) ([]Point, error) {
	column, ok := metricColumns[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", name)
	}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT taken_at, %s FROM metrics ORDER BY taken_at`, column))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s series: %w", name, err)
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.At, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", name, err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// Count returns the number of retained rows.
func (r *Recorder) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM metrics`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count metrics: %w", err)
	}
	return n, nil
}

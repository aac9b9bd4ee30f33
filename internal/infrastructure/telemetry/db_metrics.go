package telemetry

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PoolStatser is satisfied by *sql.DB
type PoolStatser interface {
	Stats() sql.DBStats
}

// DBPoolMetrics reports connection pool state on every collection.
// Unregister detaches the callback.
type DBPoolMetrics struct {
	registration metric.Registration
}

var (
	attrPoolState = attribute.Key("state")
	poolInUse     = metric.WithAttributes(attrPoolState.String("in_use"))
	poolIdle      = metric.WithAttributes(attrPoolState.String("idle"))
)

// NewDBPoolMetrics registers observable gauges over the pool of db:
//   - db_pool_connections{state=in_use|idle}
//   - db_pool_connections_max
//   - db_pool_wait_total
func NewDBPoolMetrics(meter metric.Meter, db PoolStatser) (*DBPoolMetrics, error) {
	connections, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create db_pool_connections: %w", err)
	}

	maxOpen, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum number of open connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create db_pool_connections_max: %w", err)
	}

	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Total number of waits for a free connection"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create db_pool_wait_total: %w", err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		o.ObserveInt64(connections, int64(stats.InUse), poolInUse)
		o.ObserveInt64(connections, int64(stats.Idle), poolIdle)
		o.ObserveInt64(maxOpen, int64(stats.MaxOpenConnections))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, connections, maxOpen, waits)
	if err != nil {
		return nil, fmt.Errorf("failed to register pool callback: %w", err)
	}

	return &DBPoolMetrics{registration: reg}, nil
}

// Unregister stops reporting. Safe on a nil receiver.
func (m *DBPoolMetrics) Unregister() error {
	if m == nil || m.registration == nil {
		return nil
	}
	return m.registration.Unregister()
}

package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// WriteMetrics counts accepted and rejected writes per table
type WriteMetrics struct {
	created  *Counter
	rejected *Counter
}

// NewWriteMetrics registers the write counters on meter
func NewWriteMetrics(meter metric.Meter) (*WriteMetrics, error) {
	created, err := NewCounter(meter,
		"tienda_records_created_total",
		"Rows inserted through the write endpoints",
		"{record}",
	)
	if err != nil {
		return nil, err
	}
	rejected, err := NewCounter(meter,
		"tienda_writes_rejected_total",
		"Write requests that did not insert a row",
		"{request}",
	)
	if err != nil {
		return nil, err
	}
	return &WriteMetrics{created: created, rejected: rejected}, nil
}

// RecordCreated counts a successful insert into table.
// Safe to call on a nil receiver.
func (m *WriteMetrics) RecordCreated(ctx context.Context, table string) {
	if m == nil {
		return
	}
	m.created.Inc(ctx, AttrTable.String(table))
}

// RecordRejected counts a failed write with its error code.
// Safe to call on a nil receiver.
func (m *WriteMetrics) RecordRejected(ctx context.Context, table, code string) {
	if m == nil {
		return
	}
	m.rejected.Inc(ctx, AttrTable.String(table), AttrErrorCode.String(code))
}

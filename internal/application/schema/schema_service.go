// Package schema exposes read-only introspection of the store's tables.
package schema

import (
	"context"

	"github.com/tienda/backend/internal/domain/schema"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// SchemaService lists tables and columns subject to a TablePolicy
type SchemaService struct {
	reader schema.Reader
	policy *schema.TablePolicy
}

// NewSchemaService creates a new SchemaService. A nil policy falls back
// to the default allow-list.
func NewSchemaService(reader schema.Reader, policy *schema.TablePolicy) *SchemaService {
	if policy == nil {
		policy = schema.NewTablePolicy(nil)
	}
	return &SchemaService{reader: reader, policy: policy}
}

// ListTables returns the tables of the store's default namespace
func (s *SchemaService) ListTables(ctx context.Context, baseOnly bool) ([]schema.Table, error) {
	return s.reader.ListTables(ctx, baseOnly)
}

// ListColumns returns the columns of table in declaration order.
// The name is checked against the policy before any query is issued;
// a table without columns is reported as ErrNotFound.
func (s *SchemaService) ListColumns(ctx context.Context, table string) ([]schema.Column, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "schema", "list_columns")
	defer span.End()

	if err := s.policy.Check(table); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String(telemetry.SpanAttrTable, table))

	columns, err := s.reader.ListColumns(ctx, table)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if len(columns) == 0 {
		return nil, shared.ErrNotFound
	}
	return columns, nil
}

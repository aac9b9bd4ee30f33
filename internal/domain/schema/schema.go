// Package schema describes the store's own catalog: which tables exist and
// what columns they declare.
package schema

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/tienda/backend/internal/domain/shared"
)

// DefaultAllowedTables is the closed set of tables exposed for introspection
var DefaultAllowedTables = []string{"productos", "clientes", "ordenes", "categorias"}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Table is a table name as listed by the catalog
type Table struct {
	Name string `json:"table_name"`
}

// Column describes a single declared column
type Column struct {
	Name     string  `json:"column_name"`
	DataType string  `json:"data_type"`
	Nullable string  `json:"is_nullable"`
	Default  *string `json:"column_default"`
}

// Reader lists tables and columns from the store's metadata views
type Reader interface {
	ListTables(ctx context.Context, baseOnly bool) ([]Table, error)
	// ListColumns returns columns in declaration order; an unknown table
	// yields an empty slice.
	ListColumns(ctx context.Context, table string) ([]Column, error)
}

// IsValidIdentifier reports whether name is a plain SQL identifier
func IsValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// TablePolicy decides which table names may be introspected
type TablePolicy struct {
	allowed map[string]struct{}
}

// NewTablePolicy builds a policy from an allow-list. An empty list falls
// back to DefaultAllowedTables.
func NewTablePolicy(allowed []string) *TablePolicy {
	if len(allowed) == 0 {
		allowed = DefaultAllowedTables
	}
	p := &TablePolicy{allowed: make(map[string]struct{}, len(allowed))}
	for _, name := range allowed {
		name = strings.TrimSpace(name)
		if name != "" {
			p.allowed[name] = struct{}{}
		}
	}
	return p
}

// Check returns ErrInvalidIdentifier for malformed names and ErrNotFound for
// well-formed names outside the allow-list.
func (p *TablePolicy) Check(table string) error {
	if !IsValidIdentifier(table) {
		return shared.ErrInvalidIdentifier
	}
	if _, ok := p.allowed[table]; !ok {
		return shared.ErrNotFound
	}
	return nil
}

// Allowed returns the allow-listed table names in sorted order
func (p *TablePolicy) Allowed() []string {
	names := make([]string, 0, len(p.allowed))
	for name := range p.allowed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

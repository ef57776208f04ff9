// Package tables holds curated category tables: ordered mappings from a
// category to its member terms. Tables feed the graph builder's merges and
// are read from disk by a FileLoader.
package tables

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind names the merge a table feeds.
type Kind string

const (
	KindCategory     Kind = "category"
	KindSubstitution Kind = "substitution"
	KindProperty     Kind = "property"
	KindSynonym      Kind = "synonym"
	KindCancellation Kind = "cancellation"
)

// Kinds lists every table kind in merge order.
var Kinds = []Kind{KindCategory, KindSubstitution, KindProperty, KindSynonym, KindCancellation}

// ErrUnknownKind is returned by ParseKind for an unrecognised kind.
var ErrUnknownKind = errors.New("unknown table kind")

// ParseKind validates s as a table kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(s))
	if !slices.Contains(Kinds, k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Row is one category with its members.
type Row struct {
	Category string
	Members  []string
}

// Table is an ordered category -> members mapping. The first row added for a
// category wins; later rows for it are ignored.
type Table struct {
	Name  string
	rows  []Row
	byCat map[string]int
}

// New creates an empty table. name is used in warnings and logs.
func New(name string) *Table {
	return &Table{Name: name, byCat: make(map[string]int)}
}

// Add appends a row. Category and members are trimmed, empty members are
// dropped. It returns false when the category is empty or already present.
func (t *Table) Add(category string, members ...string) bool {
	category = strings.TrimSpace(category)
	if category == "" {
		return false
	}
	if _, exists := t.byCat[category]; exists {
		return false
	}
	row := Row{Category: category}
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			row.Members = append(row.Members, m)
		}
	}
	t.byCat[category] = len(t.rows)
	t.rows = append(t.rows, row)
	return true
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = Row{Category: r.Category, Members: slices.Clone(r.Members)}
	}
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Loader produces tables by identifier. For FileLoader the identifier is a
// path.
type Loader interface {
	Load(ctx context.Context, id string) (*Table, error)
}

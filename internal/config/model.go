package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/pantrygraph/internal/tables"
)

const (
	// DefaultRootName names the synthetic root when the configuration omits it.
	DefaultRootName = "food"
	// UnboundedDepth expands the lexicon without a depth limit.
	UnboundedDepth = -1
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	Graph   Graph
	Lexicon Lexicon
	Tables  []TableRef
}

// Graph holds the expansion settings.
type Graph struct {
	Root     string
	Seeds    []string
	MaxDepth int
}

// Lexicon lists the files or directories holding concept definitions.
type Lexicon struct {
	Paths []string
}

// TableRef points at one curated table.
type TableRef struct {
	Kind tables.Kind
	Path string
}

// NewModel returns a model populated with defaults.
func NewModel() *Model {
	return &Model{Graph: Graph{Root: DefaultRootName, MaxDepth: UnboundedDepth}}
}

// Validate checks the model for settings no graph can be built from.
func (m *Model) Validate() error {
	if m.Graph.Root == "" {
		return fmt.Errorf("%w: graph root name is empty", ErrInvalidConfig)
	}
	if len(m.Graph.Seeds) == 0 {
		return fmt.Errorf("%w: at least one seed concept is required", ErrInvalidConfig)
	}
	if len(m.Lexicon.Paths) == 0 {
		return fmt.Errorf("%w: no lexicon paths configured", ErrInvalidConfig)
	}
	for i, t := range m.Tables {
		if _, err := tables.ParseKind(string(t.Kind)); err != nil {
			return fmt.Errorf("%w: table %d: %w", ErrInvalidConfig, i, err)
		}
		if t.Path == "" {
			return fmt.Errorf("%w: table %d (%s) has no path", ErrInvalidConfig, i, t.Kind)
		}
	}
	return nil
}

// TablesOf returns the table references of kind k in declaration order.
func (m *Model) TablesOf(k tables.Kind) []TableRef {
	var out []TableRef
	for _, t := range m.Tables {
		if t.Kind == k {
			out = append(out, t)
		}
	}
	return out
}

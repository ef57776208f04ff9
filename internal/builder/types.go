package builder

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrBuildFailed wraps every fatal construction error.
var ErrBuildFailed = errors.New("graph construction failed")

// WarningKind classifies a non-fatal anomaly met while merging tables.
type WarningKind string

const (
	// WarnAutoCreated: a property or synonym row named a concept absent from
	// the graph, so a node was created for it.
	WarnAutoCreated WarningKind = "auto-created"
	// WarnBadProperty: a property token could not be parsed.
	WarnBadProperty WarningKind = "bad-property"
	// WarnUnresolved: a cancellation row named a concept that does not exist.
	WarnUnresolved WarningKind = "unresolved"
	// WarnRejectedEdge: the taxonomy refused an edge, e.g. a node listed as
	// its own member.
	WarnRejectedEdge WarningKind = "rejected-edge"
	// WarnRenamed: a concept's name was already taken, so the node is named
	// after the concept id instead.
	WarnRenamed WarningKind = "renamed"
)

// Warning describes one anomaly. Table and Entry locate the offending row.
type Warning struct {
	Kind    WarningKind
	Table   string
	Entry   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s [%s] %s", w.Kind, w.Table, w.Entry, w.Message)
}

var (
	// nodesCreated counts nodes created by construction phase.
	nodesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pantrygraph_builder_nodes_created_total",
		Help: "Total taxonomy nodes created by construction phase",
	}, []string{"phase"})

	// rowsMerged counts curated table rows applied by table kind.
	rowsMerged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pantrygraph_builder_rows_merged_total",
		Help: "Total curated table rows merged by table kind",
	}, []string{"kind"})

	// warningsTotal counts construction warnings by kind.
	warningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pantrygraph_builder_warnings_total",
		Help: "Total construction warnings by kind",
	}, []string{"kind"})
)

package hcl

import "github.com/hashicorp/hcl/v2"

// configRoot decodes all possible top-level blocks of a configuration file.
type configRoot struct {
	Graph   *graphBlock   `hcl:"graph,block"`
	Lexicon *lexiconBlock `hcl:"lexicon,block"`
	Tables  []*tableBlock `hcl:"table,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

type graphBlock struct {
	Root     *string  `hcl:"root,optional"`
	Seeds    []string `hcl:"seeds"`
	MaxDepth *int     `hcl:"max_depth,optional"`
}

type lexiconBlock struct {
	Paths []string `hcl:"paths"`
}

type tableBlock struct {
	Kind string `hcl:"kind,label"`
	Path string `hcl:"path"`
}

// lexiconRoot decodes a lexicon file: a flat list of concept blocks.
type lexiconRoot struct {
	Concepts []*conceptBlock `hcl:"concept,block"`
}

type conceptBlock struct {
	ID       string         `hcl:"id,label"`
	Name     *string        `hcl:"name,optional"`
	Lemmas   hcl.Expression `hcl:"lemmas,optional"`
	Hyponyms hcl.Expression `hcl:"hyponyms,optional"`
}

// tableRoot decodes a curated table file. Rows keep file order.
type tableRoot struct {
	Rows []*rowBlock `hcl:"row,block"`
}

type rowBlock struct {
	Category string         `hcl:"category,label"`
	Members  hcl.Expression `hcl:"members,optional"`
}

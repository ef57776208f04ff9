package app

import (
	"context"

	"github.com/specialistvlad/pantrygraph/internal/config"
	"github.com/specialistvlad/pantrygraph/internal/hcl"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
	"github.com/specialistvlad/pantrygraph/internal/tables"
)

// LexiconLoader reads lexicon entries from files or directories.
type LexiconLoader func(ctx context.Context, paths ...string) ([]lexicon.Entry, error)

// Sources bundles the format-specific readers an App builds from.
type Sources struct {
	Config  config.Loader
	Lexicon LexiconLoader
	Tables  tables.Loader
}

// DefaultSources reads configuration and lexicon files as HCL, and tables as
// CSV, YAML or HCL depending on the file extension.
func DefaultSources() Sources {
	return Sources{
		Config:  hcl.NewLoader(),
		Lexicon: hcl.LoadLexicon,
		Tables:  tables.NewFileLoader("", tables.WithDecoder(".hcl", hcl.DecodeTable)),
	}
}

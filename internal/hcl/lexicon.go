package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
)

// LoadLexicon reads concept blocks from every .hcl file under paths:
//
//	concept "beef.n.02" {
//	  name     = "beef"
//	  lemmas   = ["beef", "boeuf"]
//	  hyponyms = ["ground_beef.n.01"]
//	}
//
// Entries are returned in file order; building the Source is left to the
// caller.
func LoadLexicon(ctx context.Context, paths ...string) ([]lexicon.Entry, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no lexicon files found in %v", paths)
	}

	parser := hclparse.NewParser()
	var entries []lexicon.Entry
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse lexicon file %s: %w", file, diags)
		}
		var root lexiconRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode lexicon file %s: %w", file, diags)
		}

		for _, c := range root.Concepts {
			e, err := translateConcept(ctx, c)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			entries = append(entries, e)
		}
		logger.Debug("Lexicon file loaded.", "file", file, "concepts", len(root.Concepts))
	}
	return entries, nil
}

func translateConcept(ctx context.Context, c *conceptBlock) (lexicon.Entry, error) {
	e := lexicon.Entry{ID: lexicon.ConceptID(c.ID)}
	if c.Name != nil {
		e.Name = *c.Name
	}

	lemmas, err := decodeStringList(ctx, c.Lemmas, "lemmas")
	if err != nil {
		return e, fmt.Errorf("concept '%s': %w", c.ID, err)
	}
	e.Lemmas = lemmas

	hyponyms, err := decodeStringList(ctx, c.Hyponyms, "hyponyms")
	if err != nil {
		return e, fmt.Errorf("concept '%s': %w", c.ID, err)
	}
	for _, h := range hyponyms {
		e.Hyponyms = append(e.Hyponyms, lexicon.ConceptID(h))
	}
	return e, nil
}

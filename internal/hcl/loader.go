package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pantrygraph/internal/config"
	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"github.com/specialistvlad/pantrygraph/internal/tables"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges their blocks into a
// single model. Paths inside a file are resolved against that file's
// directory. A graph or lexicon block may appear only once overall.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl configuration files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	model := config.NewModel()
	parser := hclparse.NewParser()
	var graphFile, lexiconFile string

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root configRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if g := root.Graph; g != nil {
			if graphFile != "" {
				return nil, fmt.Errorf("duplicate graph block in %s (first defined in %s)", file, graphFile)
			}
			graphFile = file
			model.Graph.Seeds = g.Seeds
			if g.Root != nil {
				model.Graph.Root = *g.Root
			}
			if g.MaxDepth != nil {
				model.Graph.MaxDepth = *g.MaxDepth
			}
		}
		if lx := root.Lexicon; lx != nil {
			if lexiconFile != "" {
				return nil, fmt.Errorf("duplicate lexicon block in %s (first defined in %s)", file, lexiconFile)
			}
			lexiconFile = file
			for _, p := range lx.Paths {
				model.Lexicon.Paths = append(model.Lexicon.Paths, resolvePath(file, p))
			}
		}
		for _, t := range root.Tables {
			model.Tables = append(model.Tables, config.TableRef{
				Kind: tables.Kind(t.Kind),
				Path: resolvePath(file, t.Path),
			})
		}
	}

	logger.Debug("HCL loading complete.", "seeds", len(model.Graph.Seeds), "lexicon_paths", len(model.Lexicon.Paths), "tables", len(model.Tables))
	return model, nil
}

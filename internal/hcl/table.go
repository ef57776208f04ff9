package hcl

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pantrygraph/internal/tables"
)

// DecodeTable is a tables.Decoder for HCL tables:
//
//	row "chicken" {
//	  members = ["tofu", "seitan"]
//	}
//
// Rows keep file order and follow the usual table rules.
func DecodeTable(r io.Reader, name string) (*tables.Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	hclFile, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse table: %w", diags)
	}

	var root tableRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode table: %w", diags)
	}

	t := tables.New(name)
	ctx := context.Background()
	for _, row := range root.Rows {
		members, err := decodeStringList(ctx, row.Members, "members")
		if err != nil {
			return nil, fmt.Errorf("row '%s': %w", row.Category, err)
		}
		t.Add(row.Category, members...)
	}
	return t, nil
}

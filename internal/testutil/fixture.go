package testutil

import (
	"path/filepath"
	"testing"
)

// pantryFiles is a complete on-disk configuration: an HCL config, an HCL
// lexicon and one curated table of every kind in mixed formats.
var pantryFiles = map[string]string{
	"pantry.hcl": `
graph {
  seeds = ["food.n.02"]
}

lexicon {
  paths = ["lexicon"]
}

table "category" {
  path = "tables/categories.csv"
}

table "substitution" {
  path = "tables/substitutes.yaml"
}

table "property" {
  path = "tables/properties.hcl"
}

table "synonym" {
  path = "tables/synonyms.csv"
}

table "cancellation" {
  path = "tables/cancellations.csv"
}
`,
	"lexicon/food.hcl": `
concept "food.n.02" {
  name     = "solid food"
  lemmas   = ["solid food"]
  hyponyms = ["meat.n.01", "dairy_product.n.01", "produce.n.01"]
}

concept "dairy_product.n.01" {
  name     = "dairy product"
  lemmas   = ["dairy product", "dairy"]
  hyponyms = ["cheese.n.01"]
}

concept "cheese.n.01" {
  name = "cheese"
}

concept "produce.n.01" {
  name     = "produce"
  lemmas   = ["produce", "green goods"]
  hyponyms = ["apple.n.01"]
}

concept "apple.n.01" {
  name = "apple"
}
`,
	"lexicon/meat.hcl": `
concept "meat.n.01" {
  name     = "meat"
  lemmas   = ["meat"]
  hyponyms = ["beef.n.02", "poultry.n.02", "fish.n.02"]
}

concept "beef.n.02" {
  name   = "beef"
  lemmas = ["beef", "boeuf"]
}

concept "poultry.n.02" {
  name     = "poultry"
  hyponyms = ["chicken.n.01", "turkey.n.04"]
}

concept "chicken.n.01" {
  name   = "chicken"
  lemmas = ["chicken"]
}

concept "turkey.n.04" {
  name   = "turkey"
  lemmas = ["turkey"]
}

concept "fish.n.02" {
  name     = "fish"
  hyponyms = ["catfish.n.01"]
}

concept "catfish.n.01" {
  name = "catfish"
}
`,
	"tables/categories.csv": "protein,meat,tofu,seitan\n" +
		"tofu,tofurkey\n" +
		"turkey,tofurkey\n",
	"tables/substitutes.yaml": "chicken: [tofu, seitan]\n" +
		"beef:\n  - seitan\n",
	"tables/properties.hcl": `
row "meat" {
  members = ["meat", "base"]
}

row "fish" {
  members = ["fish"]
}

row "tofu" {
  members = ["tofu", "-meat"]
}

row "seitan" {
  members = ["-meat"]
}

row "dairy product" {
  members = ["dairy"]
}
`,
	"tables/synonyms.csv":      "chicken,hen\ntofu,bean curd\n",
	"tables/cancellations.csv": "tofurkey,meat\n",
}

// WritePantry writes the pantry fixture into a temporary directory and
// returns the path of its configuration file.
func WritePantry(t *testing.T) string {
	t.Helper()
	return filepath.Join(WriteFiles(t, pantryFiles), "pantry.hcl")
}

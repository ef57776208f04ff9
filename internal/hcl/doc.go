// Package hcl provides the concrete HCL implementation for the configuration
// loading interface defined in the `config` package, plus HCL decoders for
// lexicon files and curated tables. It is responsible for all HCL file
// parsing and cty-to-Go data binding; the core packages never see HCL.
package hcl

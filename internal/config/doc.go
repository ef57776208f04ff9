// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` is the single source of truth for the `app` package when
// assembling a graph. Concrete implementations of the Loader, such as for HCL,
// are provided in separate packages.
package config

// Package config defines the format-agnostic data model that every loader
// produces, along with the Loader interface the application depends on.
//
// The `config.Model` is the single input of a registration session. Concrete
// loaders, such as for HCL or YAML data files, live in separate packages.
package config

// Package config defines the format-agnostic model of a grid
// definition and the Loader interface a concrete format (HCL) plugs
// into. Downstream packages depend only on this model, never on a
// parser.
package config

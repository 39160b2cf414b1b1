// Package hcl implements the config.Loader interface for grid files
// written in HCL.
package hcl

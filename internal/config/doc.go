// Package config defines the resolved application configuration and its HCL
// loader. Three layers stack onto each other: built-in defaults, an optional
// HCL file, and runtime overrides from flags and environment applied by the
// app. The calendar living here fixes the grid dimensions for the whole
// program; payload contents never influence the shape.
package config

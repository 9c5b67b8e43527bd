// Package app contains the core application logic. It defines the main App
// struct, its runtime configuration, and the fetch → build → render
// lifecycle, decoupled from any specific entrypoint like a CLI.
package app

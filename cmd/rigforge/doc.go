// Package main hosts the rigforge CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into asset
// collection, mapping rule expansion, project file generation, rules file
// validation, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

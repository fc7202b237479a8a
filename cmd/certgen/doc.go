// Package main hosts the certgen CLI entrypoint and command graph.
//
// The Cobra-based command tree drives the certificate workflow against the
// rendering backend: full pipeline runs, archive downloads, run history, and
// configuration scaffolding. It centralizes configuration resolution, journal
// access, and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

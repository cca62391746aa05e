// Package main hosts the zizutil CLI entrypoint and command graph.
//
// The Cobra command tree exposes the JSON config reconciler (ensure, persist,
// show, check) alongside the small text and number helpers. It centralizes
// settings resolution and structured logging setup so subcommands only parse
// their own flags and call into the internal packages.
package main

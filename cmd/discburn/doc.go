// Package main hosts the discburn CLI entrypoint and command graph.
//
// The Cobra command tree plays the role of the burn options page: it lists
// the configured recorders, resolves what the inserted media allows, commits
// burn options into the settings database, and watches a recorder for media
// changes. Configuration resolution, localization, and logging setup live in
// the command context so subcommands stay declarative.
package main

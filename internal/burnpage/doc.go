// Package burnpage implements the general burn options page without a GUI.
//
// A Page tracks the selected recorder by registry identifier, resolves what
// the inserted media allows, holds the in-progress form inputs, and commits
// them into the options store on Apply. It has two states: MediaUnavailable,
// where Apply is refused, and MediaReady. Device selection, Refresh, and a
// Poll that detects a media change all pass through MediaUnavailable and
// re-resolve.
//
// A Page is used from a single goroutine.
package burnpage

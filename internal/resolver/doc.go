// Package resolver decides what a recorder can do with the media it holds.
//
// ResolveMedia classifies the current profile, lists offered write speeds and
// write methods in their fixed priority order, and reports whether simulation
// and buffer underrun protection may be offered. SuggestWriteMethod picks a
// method for an image from its TOC and session mode. Both functions only run
// read-only queries against the device and keep no state, so callers may
// invoke them from a poll loop as often as they like.
package resolver

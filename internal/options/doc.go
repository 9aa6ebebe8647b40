// Package options holds the burn options record and the settings context it
// lives in.
//
// Validate turns raw page inputs into a BurnOptions value against the
// capabilities the resolver offered for the current media; Store keeps the
// committed record and replaces it in a single atomic assignment, so a failed
// validation never disturbs what was committed before.
package options

// Package inventory turns the configured drives and recorders into devices
// and registers them under their configured identifiers.
package inventory

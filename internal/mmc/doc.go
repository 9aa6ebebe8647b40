// Package mmc models the recorder-facing vocabulary used by the burn option
// resolver: MMC media profiles, drive capability flags, write methods, and
// write speed units.
//
// The Device interface is the only view of a recorder the rest of the module
// consumes. Backends (udev-backed drives, configured inventories, test fakes)
// implement it; none of them are imported from here.
package mmc

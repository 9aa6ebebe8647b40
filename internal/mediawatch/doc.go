// Package mediawatch detects media changes on a recorder.
//
// Watcher.Check is the recurring task: it fingerprints the device's profile
// and write speeds and reports whether they differ from the previous check.
// Monitor schedules that task on a ticker and, when a NetlinkSource is
// available, also runs it as soon as udev reports a change on the drive.
package mediawatch

// Package settingsdb persists committed burn options in SQLite.
//
// The database keeps one current options row and an append-only commit
// history. A settings session holds an exclusive file lock beside the
// database for its lifetime, so only one process commits at a time.
package settingsdb

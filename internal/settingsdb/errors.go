package settingsdb

import "errors"

var (
	// ErrSessionBusy indicates another process holds the settings lock.
	ErrSessionBusy = errors.New("settings session busy")
	// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)

package mediawatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"discburn/internal/mmc"
)

// Fingerprint captures the media-visible state of a device.
type Fingerprint struct {
	Profile mmc.Profile
	Speeds  string
}

// Take reads a fingerprint from device. Speeds are only queried when media
// is present.
func Take(device mmc.Device) (Fingerprint, error) {
	if device == nil {
		return Fingerprint{}, fmt.Errorf("no device")
	}
	profile, err := device.Profile()
	if err != nil {
		return Fingerprint{}, fmt.Errorf("query profile: %w", err)
	}
	fp := Fingerprint{Profile: profile}
	if profile == mmc.ProfileNone {
		return fp, nil
	}
	speeds, err := device.WriteSpeeds()
	if err != nil {
		return Fingerprint{}, fmt.Errorf("query write speeds: %w", err)
	}
	parts := make([]string, len(speeds))
	for i, s := range speeds {
		parts[i] = strconv.Itoa(s)
	}
	fp.Speeds = strings.Join(parts, ",")
	return fp, nil
}

// Watcher remembers the last fingerprint seen for one device.
type Watcher struct {
	device mmc.Device

	mu   sync.Mutex
	last Fingerprint
	seen bool
	// failed marks a baseline that could not be read. The next successful
	// read counts as a change so the caller re-resolves.
	failed bool
}

// NewWatcher returns a watcher for device with no baseline.
func NewWatcher(device mmc.Device) *Watcher {
	return &Watcher{device: device}
}

// Device returns the watched device.
func (w *Watcher) Device() mmc.Device {
	return w.device
}

// Reset records the current state as the baseline.
func (w *Watcher) Reset() error {
	fp, err := Take(w.device)
	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.seen = false
		w.failed = true
		return err
	}
	w.last = fp
	w.seen = true
	w.failed = false
	return nil
}

// Check reports whether the media changed since the previous check or Reset.
// The first check only records a baseline, unless Reset failed, in which case
// the first successful read is reported as a change. A failed query leaves
// the baseline in place.
func (w *Watcher) Check(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fp, err := Take(w.device)
	if err != nil {
		return false, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.seen {
		recovered := w.failed
		w.last = fp
		w.seen = true
		w.failed = false
		return recovered, nil
	}
	if fp == w.last {
		return false, nil
	}
	w.last = fp
	return true, nil
}

// Package registry maps stable device identifiers to recorder devices.
//
// Pages and commands keep identifiers in their control data and resolve them
// here on use, so a selection never owns or dangles a device handle.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"discburn/internal/mmc"
)

var (
	// ErrUnknownDevice indicates no device is registered under the id.
	ErrUnknownDevice = errors.New("unknown device")
	// ErrDuplicateDevice indicates the id is already registered.
	ErrDuplicateDevice = errors.New("device already registered")
)

// Registry is a concurrency-safe id to device map.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]mmc.Device
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{devices: make(map[string]mmc.Device)}
}

// Register stores device under id.
func (r *Registry) Register(id string, device mmc.Device) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("device id is required")
	}
	if device == nil {
		return fmt.Errorf("device %q: nil device", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.devices[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDevice, id)
	}
	r.devices[id] = device
	return nil
}

// Lookup returns the device registered under id.
func (r *Registry) Lookup(id string) (mmc.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	device, ok := r.devices[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, id)
	}
	return device, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.devices))
	for id := range r.devices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Remove drops id. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.devices, strings.TrimSpace(id))
	r.mu.Unlock()
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

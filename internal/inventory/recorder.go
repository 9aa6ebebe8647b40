package inventory

import (
	"fmt"
	"strings"
	"sync"

	"discburn/internal/config"
	"discburn/internal/mmc"
)

// Recorder is a device whose media state is declared in configuration. The
// profile may be changed at runtime to model inserting or ejecting media.
type Recorder struct {
	id     string
	name   string
	speeds []int
	caps   mmc.CapabilitySet

	mu      sync.RWMutex
	profile mmc.Profile
}

// NewRecorder builds a Recorder from its configuration block.
func NewRecorder(cfg config.Recorder) (*Recorder, error) {
	profile, err := mmc.ParseProfile(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("recorder %q: %w", cfg.ID, err)
	}
	caps := mmc.NewCapabilitySet()
	for _, token := range cfg.Capabilities {
		c, err := mmc.ParseCapability(token)
		if err != nil {
			return nil, fmt.Errorf("recorder %q: %w", cfg.ID, err)
		}
		caps[c] = true
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = cfg.ID
	}
	return &Recorder{
		id:      cfg.ID,
		name:    name,
		speeds:  append([]int(nil), cfg.Speeds...),
		caps:    caps,
		profile: profile,
	}, nil
}

// ID returns the configured identifier.
func (r *Recorder) ID() string { return r.id }

// Name returns the display name.
func (r *Recorder) Name() string { return r.name }

// Profile returns the declared media profile.
func (r *Recorder) Profile() (mmc.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

// SetProfile replaces the media profile.
func (r *Recorder) SetProfile(p mmc.Profile) {
	r.mu.Lock()
	r.profile = p
	r.mu.Unlock()
}

// WriteSpeeds returns the declared write speeds in kB/s.
func (r *Recorder) WriteSpeeds() ([]int, error) {
	return append([]int(nil), r.speeds...), nil
}

// Supports reports whether the recorder declares c.
func (r *Recorder) Supports(c mmc.Capability) bool {
	return r.caps.Has(c)
}

// Capabilities returns the declared capability tokens.
func (r *Recorder) Capabilities() []string {
	return r.caps.Tokens()
}

var _ mmc.Device = (*Recorder)(nil)

package testsupport

import (
	"sync"

	"discburn/internal/mmc"
)

// FakeDevice is an in-memory mmc.Device whose media can be swapped mid-test.
type FakeDevice struct {
	mu         sync.Mutex
	name       string
	profile    mmc.Profile
	speeds     []int
	caps       mmc.CapabilitySet
	profileErr error
	speedErr   error
	queries    int
}

// NewFakeDevice builds a device holding profile with the given capabilities.
func NewFakeDevice(profile mmc.Profile, speeds []int, caps ...mmc.Capability) *FakeDevice {
	return &FakeDevice{
		name:    "Fake Recorder",
		profile: profile,
		speeds:  append([]int(nil), speeds...),
		caps:    mmc.NewCapabilitySet(caps...),
	}
}

func (d *FakeDevice) Name() string { return d.name }

func (d *FakeDevice) Profile() (mmc.Profile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queries++
	if d.profileErr != nil {
		return mmc.ProfileNone, d.profileErr
	}
	return d.profile, nil
}

func (d *FakeDevice) WriteSpeeds() ([]int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.speedErr != nil {
		return nil, d.speedErr
	}
	return append([]int(nil), d.speeds...), nil
}

func (d *FakeDevice) Supports(c mmc.Capability) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.caps.Has(c)
}

// SetProfile simulates a media change.
func (d *FakeDevice) SetProfile(p mmc.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profile = p
}

// SetSpeeds replaces the reported write speeds.
func (d *FakeDevice) SetSpeeds(speeds ...int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.speeds = append([]int(nil), speeds...)
}

// FailProfile makes Profile return err until cleared with nil.
func (d *FakeDevice) FailProfile(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profileErr = err
}

// FailSpeeds makes WriteSpeeds return err until cleared with nil.
func (d *FakeDevice) FailSpeeds(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.speedErr = err
}

// ProfileQueries returns how many times Profile was called.
func (d *FakeDevice) ProfileQueries() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queries
}

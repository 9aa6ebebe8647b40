package drive

import (
	"errors"
	"fmt"
	"strings"

	"discburn/internal/config"
	"discburn/internal/mmc"
)

// Option customizes how a Drive reaches the system.
type Option func(*Drive)

// WithStatusFunc replaces the CDROM_DRIVE_STATUS query.
func WithStatusFunc(fn func(string) (Status, error)) Option {
	return func(d *Drive) { d.status = fn }
}

// WithDeviceNumberFunc replaces the major:minor lookup.
func WithDeviceNumberFunc(fn func(string) (uint32, uint32, error)) Option {
	return func(d *Drive) { d.deviceNumber = fn }
}

// WithUdevDataDir points the profile lookup at another udev database.
func WithUdevDataDir(dir string) Option {
	return func(d *Drive) { d.udevDir = dir }
}

// Drive is an optical drive node.
type Drive struct {
	id     string
	name   string
	path   string
	speeds []int
	caps   mmc.CapabilitySet

	status       func(string) (Status, error)
	deviceNumber func(string) (uint32, uint32, error)
	udevDir      string
}

// New builds a Drive from its configuration block.
func New(cfg config.Drive, opts ...Option) (*Drive, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("drive %q: path is required", cfg.ID)
	}
	caps := mmc.NewCapabilitySet()
	for _, token := range cfg.Capabilities {
		c, err := mmc.ParseCapability(token)
		if err != nil {
			return nil, fmt.Errorf("drive %q: %w", cfg.ID, err)
		}
		caps[c] = true
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = path
	}
	d := &Drive{
		id:           cfg.ID,
		name:         name,
		path:         path,
		speeds:       append([]int(nil), cfg.Speeds...),
		caps:         caps,
		status:       CheckStatus,
		deviceNumber: DeviceNumber,
		udevDir:      DefaultUdevDataDir,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ID returns the configured identifier.
func (d *Drive) ID() string { return d.id }

// Name returns the display name.
func (d *Drive) Name() string { return d.name }

// Path returns the device node.
func (d *Drive) Path() string { return d.path }

// Status reports tray and media presence.
func (d *Drive) Status() (Status, error) {
	return d.status(d.path)
}

// Properties returns the udev properties recorded for the node.
func (d *Drive) Properties() (map[string]string, error) {
	major, minor, err := d.deviceNumber(d.path)
	if err != nil {
		return nil, err
	}
	return readUdevProperties(d.udevDir, major, minor)
}

// Profile returns the profile of the inserted media. An empty tray, open
// tray, or spinning-up drive reports ProfileNone. Drives that return no
// status information are checked against udev alone.
func (d *Drive) Profile() (mmc.Profile, error) {
	status, err := d.Status()
	if errors.Is(err, ErrUnsupportedPlatform) {
		return mmc.ProfileNone, nil
	}
	if err != nil {
		return mmc.ProfileNone, err
	}
	switch status {
	case StatusNoDisc, StatusTrayOpen, StatusNotReady:
		return mmc.ProfileNone, nil
	}

	props, err := d.Properties()
	if err != nil {
		return mmc.ProfileNone, fmt.Errorf("drive %s: %w", d.path, err)
	}
	return MediaProfile(props), nil
}

// WriteSpeeds returns the configured write speeds in kB/s.
func (d *Drive) WriteSpeeds() ([]int, error) {
	return append([]int(nil), d.speeds...), nil
}

// Supports reports whether the drive declares c.
func (d *Drive) Supports(c mmc.Capability) bool {
	return d.caps.Has(c)
}

// Capabilities returns the declared capability tokens.
func (d *Drive) Capabilities() []string {
	return d.caps.Tokens()
}

var _ mmc.Device = (*Drive)(nil)

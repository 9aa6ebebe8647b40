package inventory

import (
	"fmt"
	"log/slog"

	"discburn/internal/config"
	"discburn/internal/drive"
	"discburn/internal/logging"
	"discburn/internal/registry"
)

// Kind distinguishes device backends.
type Kind string

const (
	KindDrive    Kind = "drive"
	KindRecorder Kind = "recorder"
)

// Entry describes one registered device for listings.
type Entry struct {
	ID           string
	Name         string
	Kind         Kind
	Path         string
	Profile      string
	Speeds       []int
	Capabilities []string
}

// Inventory holds the registry built from configuration plus listing metadata.
type Inventory struct {
	Registry *registry.Registry
	entries  []Entry
}

// Build registers every configured drive and recorder. Drive options are
// passed to each drive, which lets tests replace system access.
func Build(cfg *config.Config, logger *slog.Logger, driveOpts ...drive.Option) (*Inventory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "inventory")

	inv := &Inventory{Registry: registry.New()}
	for _, dc := range cfg.Drives {
		d, err := drive.New(dc, driveOpts...)
		if err != nil {
			return nil, err
		}
		if err := inv.Registry.Register(dc.ID, d); err != nil {
			return nil, err
		}
		inv.entries = append(inv.entries, Entry{
			ID:           dc.ID,
			Name:         d.Name(),
			Kind:         KindDrive,
			Path:         d.Path(),
			Speeds:       append([]int(nil), dc.Speeds...),
			Capabilities: d.Capabilities(),
		})
		logger.Debug("registered drive",
			logging.String(logging.FieldDeviceID, dc.ID),
			logging.String("path", d.Path()),
		)
	}
	for _, rc := range cfg.Recorders {
		r, err := NewRecorder(rc)
		if err != nil {
			return nil, err
		}
		if err := inv.Registry.Register(rc.ID, r); err != nil {
			return nil, err
		}
		inv.entries = append(inv.entries, Entry{
			ID:           rc.ID,
			Name:         r.Name(),
			Kind:         KindRecorder,
			Profile:      rc.Profile,
			Speeds:       append([]int(nil), rc.Speeds...),
			Capabilities: r.Capabilities(),
		})
		logger.Debug("registered recorder",
			logging.String(logging.FieldDeviceID, rc.ID),
			logging.String(logging.FieldProfile, rc.Profile),
		)
	}
	return inv, nil
}

// Entries returns the registered devices in configuration order, drives first.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, len(inv.entries))
	copy(out, inv.entries)
	return out
}

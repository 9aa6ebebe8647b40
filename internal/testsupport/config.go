package testsupport

import (
	"path/filepath"
	"testing"

	"discburn/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It declares a single CD-R recorder "virtual" unless options replace it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Burn.Device = "virtual"
	cfgVal.Recorders = []config.Recorder{{
		ID:           "virtual",
		Name:         "Virtual CD-R",
		Profile:      "cd-r",
		Speeds:       []int{8468, 4234},
		Capabilities: []string{"sao", "tao", "test-write", "bup"},
	}}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRecorders replaces the declared recorders.
func WithRecorders(recorders ...config.Recorder) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Recorders = recorders
	}
}

// WithDrives replaces the declared physical drives.
func WithDrives(drives ...config.Drive) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Drives = drives
	}
}

// WithBurnDevice selects the default device id.
func WithBurnDevice(id string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Burn.Device = id
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}

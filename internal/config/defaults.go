package config

const (
	defaultConfigPath        = "~/.config/discburn/config.toml"
	defaultStateDir          = "~/.local/share/discburn"
	defaultLogDir            = "~/.local/share/discburn/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLanguage          = "en"
	defaultMediaPollInterval = 2
	defaultCopies            = 1
	defaultDriveID           = "sr0"
	defaultDrivePath         = "/dev/sr0"
)

// Default returns a Config populated with repository defaults. It declares no
// drives; normalization adds DefaultDrive when a loaded file declares neither
// drives nor recorders.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Burn: Burn{
			Device:    defaultDriveID,
			Copies:    defaultCopies,
			Eject:     true,
			WriteBUP:  true,
			PadTracks: true,
			Fixate:    true,
		},
		Workflow: Workflow{
			MediaPollInterval: defaultMediaPollInterval,
			Netlink:           true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Locale: Locale{
			Language: defaultLanguage,
		},
	}
}

// DefaultDrive is /dev/sr0 with only SAO, TAO, and buffer underrun
// protection declared; raw modes must be enabled per drive.
func DefaultDrive() Drive {
	return Drive{
		ID:           defaultDriveID,
		Name:         "Default optical drive",
		Path:         defaultDrivePath,
		Capabilities: []string{"sao", "tao", "bup"},
	}
}

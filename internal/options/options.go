package options

import (
	"fmt"
	"strconv"
	"strings"

	"discburn/internal/config"
	"discburn/internal/mmc"
	"discburn/internal/resolver"
)

// BurnOptions is the committed record consumed by the burn engine.
type BurnOptions struct {
	DeviceID    string          `json:"device_id"`
	Speed       int             `json:"speed"`
	WriteMethod mmc.WriteMethod `json:"write_method"`
	Copies      int             `json:"copies"`
	OnTheFly    bool            `json:"on_the_fly"`
	Verify      bool            `json:"verify"`
	Eject       bool            `json:"eject"`
	Simulate    bool            `json:"simulate"`
	WriteBUP    bool            `json:"write_bup"`
	PadTracks   bool            `json:"pad_tracks"`
	Fixate      bool            `json:"fixate"`
}

// Inputs are the raw values a page collected. The write method travels as
// the enumeration attached to the selected label, never as label text.
type Inputs struct {
	DeviceID    string
	Speed       int
	WriteMethod mmc.WriteMethod
	CopiesText  string
	OnTheFly    bool
	Verify      bool
	Eject       bool
	Simulate    bool
	WriteBUP    bool
	PadTracks   bool
	Fixate      bool
}

// FromConfig builds the options a page starts from before anything was committed.
func FromConfig(burn config.Burn) BurnOptions {
	speed := burn.Speed
	if speed <= 0 {
		speed = mmc.SpeedMaximum
	}
	method := mmc.WriteMethodNone
	if burn.WriteMethod != "" {
		if parsed, err := mmc.ParseWriteMethod(burn.WriteMethod); err == nil {
			method = parsed
		}
	}
	copies := burn.Copies
	if copies < 1 {
		copies = 1
	}
	return BurnOptions{
		DeviceID:    burn.Device,
		Speed:       speed,
		WriteMethod: method,
		Copies:      copies,
		OnTheFly:    burn.OnTheFly,
		Verify:      burn.Verify,
		Eject:       burn.Eject,
		Simulate:    burn.Simulate,
		WriteBUP:    burn.WriteBUP,
		PadTracks:   burn.PadTracks,
		Fixate:      burn.Fixate,
	}
}

// Inputs renders o back into page inputs, e.g. to prefill a form.
func (o BurnOptions) Inputs() Inputs {
	return Inputs{
		DeviceID:    o.DeviceID,
		Speed:       o.Speed,
		WriteMethod: o.WriteMethod,
		CopiesText:  strconv.Itoa(o.Copies),
		OnTheFly:    o.OnTheFly,
		Verify:      o.Verify,
		Eject:       o.Eject,
		Simulate:    o.Simulate,
		WriteBUP:    o.WriteBUP,
		PadTracks:   o.PadTracks,
		Fixate:      o.Fixate,
	}
}

// ParseCopies parses user-entered copy count text. The whole trimmed text
// must be a number; trailing words are rejected.
func ParseCopies(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	copies, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCopyCount, trimmed)
	}
	if copies < 1 {
		return 0, fmt.Errorf("%w: %d is less than 1", ErrInvalidCopyCount, copies)
	}
	return copies, nil
}

// Validate checks in against what caps offered and returns the record to commit.
func Validate(in Inputs, caps resolver.MediaCapabilities) (BurnOptions, error) {
	copies, err := ParseCopies(in.CopiesText)
	if err != nil {
		return BurnOptions{}, err
	}
	if !caps.OffersWriteMethod(in.WriteMethod) {
		return BurnOptions{}, fmt.Errorf("%w: %s", ErrUnsupportedWriteMethod, in.WriteMethod)
	}
	if !caps.OffersSpeed(in.Speed) {
		return BurnOptions{}, fmt.Errorf("%w: %d kB/s", ErrUnsupportedSpeed, in.Speed)
	}
	if in.Simulate && !caps.Simulation {
		return BurnOptions{}, ErrSimulationUnsupported
	}
	if in.WriteBUP && !caps.BufferUnderrunProtection {
		return BurnOptions{}, ErrBUPUnsupported
	}
	return BurnOptions{
		DeviceID:    strings.TrimSpace(in.DeviceID),
		Speed:       in.Speed,
		WriteMethod: in.WriteMethod,
		Copies:      copies,
		OnTheFly:    in.OnTheFly,
		Verify:      in.Verify,
		Eject:       in.Eject,
		Simulate:    in.Simulate,
		WriteBUP:    in.WriteBUP,
		PadTracks:   in.PadTracks,
		Fixate:      in.Fixate,
	}, nil
}

package options_test

import (
	"errors"
	"testing"

	"discburn/internal/config"
	"discburn/internal/mmc"
	"discburn/internal/options"
	"discburn/internal/resolver"
)

func cdrCaps() resolver.MediaCapabilities {
	return resolver.MediaCapabilities{
		Profile:                  mmc.ProfileCDR,
		Speeds:                   []resolver.Speed{{KBps: mmc.SpeedMaximum}, {KBps: 8468, Multiplier: 48.1}},
		WriteMethods:             []mmc.WriteMethod{mmc.WriteMethodSAO, mmc.WriteMethodTAO, mmc.WriteMethodTAONoPregap},
		Simulation:               true,
		BufferUnderrunProtection: true,
	}
}

func validInputs() options.Inputs {
	return options.Inputs{
		DeviceID:    "virtual",
		Speed:       mmc.SpeedMaximum,
		WriteMethod: mmc.WriteMethodSAO,
		CopiesText:  "1",
		Fixate:      true,
	}
}

func TestParseCopies(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 12 ", 12, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"2.5", 0, true},
		{"2 copies", 0, true},
		{"3x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := options.ParseCopies(tt.text)
			if tt.wantErr {
				if !errors.Is(err, options.ErrInvalidCopyCount) {
					t.Fatalf("expected ErrInvalidCopyCount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCopies(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCopies(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCommitRejectsBadCopyCountAndKeepsPrevious(t *testing.T) {
	prior := options.BurnOptions{DeviceID: "virtual", Speed: mmc.SpeedMaximum, WriteMethod: mmc.WriteMethodTAO, Copies: 2}
	store := options.NewStore(prior)

	for _, text := range []string{"0", "abc"} {
		in := validInputs()
		in.CopiesText = text
		if _, err := store.Commit(in, cdrCaps()); !errors.Is(err, options.ErrInvalidCopyCount) {
			t.Fatalf("copies %q: expected ErrInvalidCopyCount, got %v", text, err)
		}
		if store.Current() != prior {
			t.Fatalf("copies %q: store changed to %+v", text, store.Current())
		}
	}

	in := validInputs()
	in.CopiesText = "3"
	committed, err := store.Commit(in, cdrCaps())
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if committed.Copies != 3 || store.Current().Copies != 3 {
		t.Fatalf("expected copies=3, got %+v", store.Current())
	}
}

func TestValidateRejectsUnofferedChoices(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*options.Inputs)
		caps   func(*resolver.MediaCapabilities)
		want   error
	}{
		{"raw method not offered", func(in *options.Inputs) { in.WriteMethod = mmc.WriteMethodRAW96R }, nil, options.ErrUnsupportedWriteMethod},
		{"no method", func(in *options.Inputs) { in.WriteMethod = mmc.WriteMethodNone }, nil, options.ErrUnsupportedWriteMethod},
		{"speed not offered", func(in *options.Inputs) { in.Speed = 1760 }, nil, options.ErrUnsupportedSpeed},
		{"simulate without support", func(in *options.Inputs) { in.Simulate = true }, func(c *resolver.MediaCapabilities) { c.Simulation = false }, options.ErrSimulationUnsupported},
		{"bup without support", func(in *options.Inputs) { in.WriteBUP = true }, func(c *resolver.MediaCapabilities) { c.BufferUnderrunProtection = false }, options.ErrBUPUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)
			caps := cdrCaps()
			if tt.caps != nil {
				tt.caps(&caps)
			}
			if _, err := options.Validate(in, caps); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateCarriesFlags(t *testing.T) {
	in := validInputs()
	in.Speed = 8468
	in.WriteMethod = mmc.WriteMethodTAONoPregap
	in.Simulate = true
	in.WriteBUP = true
	in.Verify = true
	in.Eject = true
	in.PadTracks = true
	in.OnTheFly = true

	got, err := options.Validate(in, cdrCaps())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := options.BurnOptions{
		DeviceID:    "virtual",
		Speed:       8468,
		WriteMethod: mmc.WriteMethodTAONoPregap,
		Copies:      1,
		OnTheFly:    true,
		Verify:      true,
		Eject:       true,
		Simulate:    true,
		WriteBUP:    true,
		PadTracks:   true,
		Fixate:      true,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got.Inputs().CopiesText != "1" {
		t.Fatalf("unexpected round trip inputs %+v", got.Inputs())
	}
}

func TestFromConfigDefaults(t *testing.T) {
	burn := config.Default().Burn
	burn.WriteMethod = "tao"
	opts := options.FromConfig(burn)
	if opts.Speed != mmc.SpeedMaximum {
		t.Fatalf("expected maximum speed, got %d", opts.Speed)
	}
	if opts.WriteMethod != mmc.WriteMethodTAO {
		t.Fatalf("expected tao, got %v", opts.WriteMethod)
	}
	if opts.Copies != 1 || !opts.Fixate || !opts.Eject {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

package inventory_test

import (
	"errors"
	"reflect"
	"testing"

	"discburn/internal/config"
	"discburn/internal/drive"
	"discburn/internal/inventory"
	"discburn/internal/mmc"
	"discburn/internal/registry"
	"discburn/internal/resolver"
	"discburn/internal/testsupport"
)

func TestRecorderResolves(t *testing.T) {
	rec, err := inventory.NewRecorder(config.Recorder{
		ID:           "virtual",
		Profile:      "cd-r",
		Speeds:       []int{8468},
		Capabilities: []string{"sao", "raw16", "test-write"},
	})
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if rec.Name() != "virtual" {
		t.Fatalf("name should default to id, got %q", rec.Name())
	}

	caps, err := resolver.ResolveMedia(rec)
	if err != nil {
		t.Fatalf("ResolveMedia: %v", err)
	}
	want := []mmc.WriteMethod{mmc.WriteMethodSAO, mmc.WriteMethodRAW16}
	if !reflect.DeepEqual(caps.WriteMethods, want) {
		t.Fatalf("methods = %v, want %v", caps.WriteMethods, want)
	}
	if !caps.Simulation {
		t.Fatal("expected simulation on CD-R with test-write")
	}

	rec.SetProfile(mmc.ProfileNone)
	if _, err := resolver.ResolveMedia(rec); !errors.Is(err, resolver.ErrMediaUnavailable) {
		t.Fatalf("expected ErrMediaUnavailable after eject, got %v", err)
	}
}

func TestNewRecorderRejectsBadTokens(t *testing.T) {
	if _, err := inventory.NewRecorder(config.Recorder{ID: "x", Profile: "floppy"}); err == nil {
		t.Fatal("expected profile error")
	}
	if _, err := inventory.NewRecorder(config.Recorder{ID: "x", Profile: "cd-r", Capabilities: []string{"laser"}}); err == nil {
		t.Fatal("expected capability error")
	}
}

func TestBuildRegistersDrivesAndRecorders(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDrives(config.Drive{
		ID:           "sr0",
		Name:         "Internal",
		Path:         "/dev/sr0",
		Capabilities: []string{"sao", "tao"},
	}))

	inv, err := inventory.Build(cfg, nil,
		drive.WithStatusFunc(func(string) (drive.Status, error) { return drive.StatusNoDisc, nil }),
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := inv.Registry.IDs(); !reflect.DeepEqual(got, []string{"sr0", "virtual"}) {
		t.Fatalf("IDs = %v", got)
	}
	entries := inv.Entries()
	if len(entries) != 2 || entries[0].Kind != inventory.KindDrive || entries[1].Kind != inventory.KindRecorder {
		t.Fatalf("unexpected entries %+v", entries)
	}

	dev, err := inv.Registry.Lookup("sr0")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, err := resolver.ResolveMedia(dev); resolver.ReasonOf(err) != resolver.ReasonNoMedia {
		t.Fatalf("expected no media for empty drive, got %v", err)
	}
}

func TestBuildRejectsDuplicateIDs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDrives(config.Drive{ID: "virtual", Path: "/dev/sr0"}))
	if _, err := inventory.Build(cfg, nil); !errors.Is(err, registry.ErrDuplicateDevice) {
		t.Fatalf("expected ErrDuplicateDevice, got %v", err)
	}
}

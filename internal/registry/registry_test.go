package registry_test

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"discburn/internal/mmc"
	"discburn/internal/registry"
	"discburn/internal/testsupport"
)

func TestRegisterLookupRemove(t *testing.T) {
	reg := registry.New()
	cdr := testsupport.NewFakeDevice(mmc.ProfileCDR, nil, mmc.CapSAO)
	dvd := testsupport.NewFakeDevice(mmc.ProfileDVDPlusR, nil, mmc.CapSAO)

	if err := reg.Register("sr1", dvd); err != nil {
		t.Fatalf("Register sr1: %v", err)
	}
	if err := reg.Register("sr0", cdr); err != nil {
		t.Fatalf("Register sr0: %v", err)
	}
	if got := reg.IDs(); !reflect.DeepEqual(got, []string{"sr0", "sr1"}) {
		t.Fatalf("IDs = %v", got)
	}

	got, err := reg.Lookup("sr0")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != mmc.Device(cdr) {
		t.Fatal("Lookup returned a different device")
	}

	if err := reg.Register("sr0", dvd); !errors.Is(err, registry.ErrDuplicateDevice) {
		t.Fatalf("expected ErrDuplicateDevice, got %v", err)
	}

	reg.Remove("sr0")
	if _, err := reg.Lookup("sr0"); !errors.Is(err, registry.ErrUnknownDevice) {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
	reg.Remove("sr0")
	if reg.Len() != 1 {
		t.Fatalf("expected 1 device, got %d", reg.Len())
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	reg := registry.New()
	if err := reg.Register("  ", testsupport.NewFakeDevice(mmc.ProfileCDR, nil)); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := reg.Register("sr0", nil); err == nil {
		t.Fatal("expected error for nil device")
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := registry.New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("dev%d", n)
			if err := reg.Register(id, testsupport.NewFakeDevice(mmc.ProfileCDR, nil)); err != nil {
				t.Errorf("Register %s: %v", id, err)
			}
			_, _ = reg.Lookup(id)
			_ = reg.IDs()
		}(i)
	}
	wg.Wait()
	if reg.Len() != 16 {
		t.Fatalf("expected 16 devices, got %d", reg.Len())
	}
}

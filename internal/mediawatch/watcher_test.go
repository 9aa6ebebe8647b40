package mediawatch_test

import (
	"context"
	"errors"
	"testing"

	"discburn/internal/mediawatch"
	"discburn/internal/mmc"
	"discburn/internal/testsupport"
)

func TestWatcherCheck(t *testing.T) {
	ctx := context.Background()
	dev := testsupport.NewFakeDevice(mmc.ProfileNone, nil, mmc.CapSAO)
	w := mediawatch.NewWatcher(dev)

	steps := []struct {
		name   string
		mutate func()
		want   bool
	}{
		{"baseline", func() {}, false},
		{"unchanged", func() {}, false},
		{"insert", func() { dev.SetProfile(mmc.ProfileCDR); dev.SetSpeeds(8468) }, true},
		{"still inserted", func() {}, false},
		{"speed list changed", func() { dev.SetSpeeds(8468, 4234) }, true},
		{"swap media", func() { dev.SetProfile(mmc.ProfileCDRW) }, true},
		{"eject", func() { dev.SetProfile(mmc.ProfileNone) }, true},
	}
	for _, step := range steps {
		step.mutate()
		changed, err := w.Check(ctx)
		if err != nil {
			t.Fatalf("%s: Check: %v", step.name, err)
		}
		if changed != step.want {
			t.Fatalf("%s: changed=%v, want %v", step.name, changed, step.want)
		}
	}
}

func TestWatcherIgnoresSpeedsWithoutMedia(t *testing.T) {
	dev := testsupport.NewFakeDevice(mmc.ProfileNone, []int{1}, mmc.CapSAO)
	w := mediawatch.NewWatcher(dev)
	if err := w.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	dev.SetSpeeds(2)
	changed, err := w.Check(context.Background())
	if err != nil || changed {
		t.Fatalf("changed=%v err=%v, want no change", changed, err)
	}
}

func TestWatcherKeepsBaselineOnError(t *testing.T) {
	ctx := context.Background()
	dev := testsupport.NewFakeDevice(mmc.ProfileCDR, []int{8468}, mmc.CapSAO)
	w := mediawatch.NewWatcher(dev)
	if err := w.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	boom := errors.New("bus reset")
	dev.FailProfile(boom)
	if _, err := w.Check(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected query error, got %v", err)
	}

	dev.FailProfile(nil)
	changed, err := w.Check(ctx)
	if err != nil || changed {
		t.Fatalf("changed=%v err=%v after recovery, want no change", changed, err)
	}
}

func TestWatcherReportsRecoveryAfterFailedReset(t *testing.T) {
	ctx := context.Background()
	dev := testsupport.NewFakeDevice(mmc.ProfileCDR, []int{8468}, mmc.CapSAO)
	w := mediawatch.NewWatcher(dev)

	notReady := errors.New("drive not ready")
	dev.FailProfile(notReady)
	if err := w.Reset(); !errors.Is(err, notReady) {
		t.Fatalf("expected Reset to fail, got %v", err)
	}
	if _, err := w.Check(ctx); !errors.Is(err, notReady) {
		t.Fatalf("expected Check to fail while the drive is busy, got %v", err)
	}

	dev.FailProfile(nil)
	changed, err := w.Check(ctx)
	if err != nil || !changed {
		t.Fatalf("changed=%v err=%v on first good read, want change", changed, err)
	}
	changed, err = w.Check(ctx)
	if err != nil || changed {
		t.Fatalf("changed=%v err=%v on second read, want no change", changed, err)
	}
}

func TestWatcherHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := mediawatch.NewWatcher(testsupport.NewFakeDevice(mmc.ProfileCDR, nil))
	if _, err := w.Check(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

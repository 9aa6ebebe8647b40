package mediawatch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"discburn/internal/logging"
	"discburn/internal/mediawatch"
)

func TestMonitorWakeTriggersCheck(t *testing.T) {
	wake := make(chan struct{}, 1)
	changes := make(chan struct{}, 4)
	var checks atomic.Int32

	check := func(context.Context) (bool, error) {
		checks.Add(1)
		return true, nil
	}
	m := mediawatch.NewMonitor(logging.NewNop(), time.Hour, check, wake, func(context.Context) {
		changes <- struct{}{}
	})
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Stop()

	wake <- struct{}{}
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected onChange after wake")
	}
	if checks.Load() < 1 {
		t.Fatal("expected at least one check")
	}
}

func TestMonitorTickerTriggersCheck(t *testing.T) {
	var checks atomic.Int32
	done := make(chan struct{})
	check := func(context.Context) (bool, error) {
		if checks.Add(1) == 2 {
			close(done)
		}
		return false, nil
	}
	m := mediawatch.NewMonitor(nil, 10*time.Millisecond, check, nil, func(context.Context) {
		t.Error("onChange must not run when nothing changed")
	})
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not drive checks")
	}
	m.Stop()
	if m.Running() {
		t.Fatal("expected monitor stopped")
	}
}

func TestMonitorSurvivesCheckErrors(t *testing.T) {
	var checks atomic.Int32
	done := make(chan struct{})
	check := func(context.Context) (bool, error) {
		if checks.Add(1) == 3 {
			close(done)
		}
		return false, errors.New("device busy")
	}
	m := mediawatch.NewMonitor(logging.NewNop(), 5*time.Millisecond, check, nil, nil)
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor stopped checking after an error")
	}
}

func TestMonitorStartTwiceFails(t *testing.T) {
	m := mediawatch.NewMonitor(nil, time.Hour, func(context.Context) (bool, error) { return false, nil }, nil, nil)
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer m.Stop()
	if err := m.Start(context.Background()); err == nil {
		t.Fatal("expected error on second Start")
	}
	m.Stop()
	m.Stop()
}

func TestRunReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := mediawatch.Run(ctx, nil, 5*time.Millisecond, func(context.Context) (bool, error) { return false, nil }, nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

package mediawatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"discburn/internal/logging"
)

const defaultPollInterval = 2 * time.Second

// CheckFunc is the recurring task; it returns true when media changed.
type CheckFunc func(ctx context.Context) (bool, error)

// Monitor invokes a CheckFunc on a ticker and on wake signals, and calls
// onChange whenever the check reports a change.
type Monitor struct {
	logger       *slog.Logger
	pollInterval time.Duration
	check        CheckFunc
	onChange     func(ctx context.Context)
	wake         <-chan struct{}

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewMonitor builds a monitor. A nil wake channel disables early wakeups.
func NewMonitor(logger *slog.Logger, interval time.Duration, check CheckFunc, wake <-chan struct{}, onChange func(ctx context.Context)) *Monitor {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Monitor{
		logger:       logging.NewComponentLogger(logger, "media-monitor"),
		pollInterval: interval,
		check:        check,
		onChange:     onChange,
		wake:         wake,
	}
}

// Start runs the loop until ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) error {
	if m == nil || m.check == nil {
		return errors.New("media monitor unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return errors.New("media monitor already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true

	m.wg.Add(1)
	go m.loop(runCtx)
	return nil
}

// Stop cancels the loop and waits for it to exit.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// Running reports whether the loop is active.
func (m *Monitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) loop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	wake := m.wake
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.poll(ctx)
		case _, ok := <-wake:
			if !ok {
				wake = nil
				continue
			}
			m.poll(ctx)
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	changed, err := m.check(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.WarnWithContext(m.logger, "media check failed", "media_check_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify the recorder is connected and readable"),
			logging.String(logging.FieldImpact, "media changes may go unnoticed until the next check"),
		)
		return
	}
	if !changed {
		return
	}
	m.logger.Info("media change detected", logging.String(logging.FieldEventType, "media_changed"))
	if m.onChange != nil {
		m.onChange(ctx)
	}
}

// Run is the blocking form of Monitor: it returns when ctx is done.
func Run(ctx context.Context, logger *slog.Logger, interval time.Duration, check CheckFunc, wake <-chan struct{}, onChange func(ctx context.Context)) error {
	m := NewMonitor(logger, interval, check, wake, onChange)
	if err := m.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	m.Stop()
	return ctx.Err()
}

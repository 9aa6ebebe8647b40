package mediawatch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"discburn/internal/logging"
)

// NetlinkSource turns udev events for one drive node into wake signals.
type NetlinkSource struct {
	logger *slog.Logger
	device string
	wake   chan struct{}

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewNetlinkSource watches devicePath, e.g. "/dev/sr0". It returns nil for an
// empty path.
func NewNetlinkSource(logger *slog.Logger, devicePath string) *NetlinkSource {
	device := strings.TrimSpace(devicePath)
	if device == "" {
		return nil
	}
	return &NetlinkSource{
		logger: logging.NewComponentLogger(logger, "netlink-monitor"),
		device: filepath.Clean(device),
		wake:   make(chan struct{}, 1),
	}
}

// C returns the wake channel. It is nil for a nil source, which blocks
// forever in a select.
func (s *NetlinkSource) C() <-chan struct{} {
	if s == nil {
		return nil
	}
	return s.wake
}

// Start connects to the udev netlink socket. Connection failure is logged
// and not returned; polling still covers media changes.
func (s *NetlinkSource) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		logging.WarnWithContext(s.logger, "failed to connect to netlink socket; media changes rely on polling", "netlink_connect_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "ensure the process may open netlink sockets"),
			logging.String(logging.FieldImpact, "media changes detected at the poll interval only"),
		)
		return nil
	}

	s.conn = conn
	s.quit = make(chan struct{})
	s.running = true

	quit := s.quit
	go s.monitorLoop(ctx, conn, quit)

	s.logger.Info("netlink monitor started",
		logging.String(logging.FieldEventType, "netlink_monitor_started"),
		logging.String("device", s.device),
	)
	return nil
}

// Stop closes the netlink connection.
func (s *NetlinkSource) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	if s.quit != nil {
		close(s.quit)
		s.quit = nil
	}
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.running = false

	s.logger.Info("netlink monitor stopped",
		logging.String(logging.FieldEventType, "netlink_monitor_stopped"),
	)
}

// Running reports whether the source is connected.
func (s *NetlinkSource) Running() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *NetlinkSource) monitorLoop(ctx context.Context, conn *netlink.UEventConn, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			s.handleEvent(uevent)
		case err := <-errs:
			logging.WarnWithContext(s.logger, "netlink monitor error", "netlink_monitor_error",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
				logging.String(logging.FieldImpact, "media change wakeups may be missed"),
			)
		}
	}
}

// buildMatcher matches add and change events on optical block devices,
// with or without media, so ejects wake the monitor as well as inserts.
func buildMatcher() netlink.Matcher {
	action := "change|add"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "block",
			"ID_CDROM":  "1",
		},
	})
	return rules
}

func (s *NetlinkSource) handleEvent(uevent netlink.UEvent) {
	devname := extractDeviceName(uevent)
	if devname == "" {
		s.logger.Debug("ignoring event without device name",
			logging.String("action", string(uevent.Action)),
			logging.String("kobj", uevent.KObj),
		)
		return
	}
	if devname != s.device {
		s.logger.Debug("ignoring event for other device",
			logging.String("device", devname),
			logging.String("watched_device", s.device),
		)
		return
	}

	s.logger.Debug("media event received",
		logging.String("device", devname),
		logging.String("action", string(uevent.Action)),
	)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// extractDeviceName gets the device node from a uevent.
func extractDeviceName(uevent netlink.UEvent) string {
	if devname := uevent.Env["DEVNAME"]; devname != "" {
		if !strings.HasPrefix(devname, "/") {
			devname = "/dev/" + devname
		}
		return devname
	}

	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	return "/dev/" + parts[len(parts)-1]
}

package burnpage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"discburn/internal/i18n"
	"discburn/internal/logging"
	"discburn/internal/mediawatch"
	"discburn/internal/mmc"
	"discburn/internal/options"
	"discburn/internal/registry"
	"discburn/internal/resolver"
)

// Image describes the image being burned, which drives the write method
// recommendation. DisableOnFly and DisableVerify lock those options off for
// images whose source cannot be streamed or read back.
type Image struct {
	HasTOC        bool
	MultiSession  bool
	DisableOnFly  bool
	DisableVerify bool
}

// ErrOptionLocked reports an attempt to set an option the image locks off.
var ErrOptionLocked = errors.New("option not available for this image")

// CommitFunc persists validated options before they replace the store's
// record. An error aborts the commit.
type CommitFunc func(ctx context.Context, opts options.BurnOptions, profile mmc.Profile) error

// Config wires a Page to its collaborators.
type Config struct {
	Registry  *registry.Registry
	Store     *options.Store
	Localizer *i18n.Localizer
	Logger    *slog.Logger
	Image     Image
	OnCommit  CommitFunc
	// Dismissed hides notices the user asked not to see again.
	Dismissed map[NoticeID]bool
}

// Page is the burn options page controller.
type Page struct {
	registry *registry.Registry
	store    *options.Store
	loc      *i18n.Localizer
	logger   *slog.Logger
	image     Image
	onCommit  CommitFunc
	dismissed map[NoticeID]bool

	deviceID string
	device   mmc.Device
	watcher  *mediawatch.Watcher

	state    State
	caps     resolver.MediaCapabilities
	mediaErr error
	warning  string
	inputs   options.Inputs
}

// New builds a page. Inputs start from the store's committed options.
func New(cfg Config) (*Page, error) {
	if cfg.Registry == nil {
		return nil, errors.New("device registry is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("options store is required")
	}
	loc := cfg.Localizer
	if loc == nil {
		var err error
		if loc, err = i18n.New(""); err != nil {
			return nil, err
		}
	}
	p := &Page{
		registry:  cfg.Registry,
		store:     cfg.Store,
		loc:       loc,
		logger:    logging.NewComponentLogger(cfg.Logger, "burn-page"),
		image:     cfg.Image,
		onCommit:  cfg.OnCommit,
		dismissed: cfg.Dismissed,
		state:     StateMediaUnavailable,
		inputs:    cfg.Store.Current().Inputs(),
	}
	p.enforceLocks()
	return p, nil
}

func (p *Page) enforceLocks() {
	if p.image.DisableOnFly {
		p.inputs.OnTheFly = false
	}
	if p.image.DisableVerify {
		p.inputs.Verify = false
	}
}

// Init selects the committed device, or the first registered one when the
// committed id is unknown, and resolves its media.
func (p *Page) Init(ctx context.Context) error {
	id := p.inputs.DeviceID
	if _, err := p.registry.Lookup(id); err != nil {
		ids := p.registry.IDs()
		if len(ids) == 0 {
			return fmt.Errorf("%w: no recorders configured", registry.ErrUnknownDevice)
		}
		id = ids[0]
	}
	return p.SelectDevice(ctx, id)
}

// SelectDevice switches the page to another recorder and resolves its media.
// A resolve failure is reflected in the state, not returned.
func (p *Page) SelectDevice(ctx context.Context, id string) error {
	device, err := p.registry.Lookup(id)
	if err != nil {
		return err
	}
	p.deviceID = id
	p.device = device
	p.watcher = mediawatch.NewWatcher(device)
	p.inputs.DeviceID = id
	p.Refresh(ctx)
	return nil
}

// Refresh re-resolves the current device and returns the resulting state.
func (p *Page) Refresh(ctx context.Context) State {
	p.enterUnavailable(nil)
	logger := p.contextLogger(ctx)
	if p.device == nil {
		p.mediaErr = &resolver.MediaError{Reason: resolver.ReasonQueryFailed, Err: errors.New("no recorder selected")}
		return p.state
	}

	if err := p.watcher.Reset(); err != nil {
		logger.Debug("media baseline unavailable", logging.Error(err))
	}

	caps, err := resolver.ResolveMedia(p.device)
	if err != nil {
		p.enterUnavailable(err)
		p.applySuggestion(logger)
		logger.Info("media unavailable",
			logging.String(logging.FieldEventType, "media_unavailable"),
			logging.String("reason", resolver.ReasonOf(err).String()),
			logging.Error(err),
		)
		return p.state
	}

	p.enterReady(caps)
	p.applySuggestion(logger)
	logger.Info("media ready",
		logging.String(logging.FieldEventType, "media_ready"),
		logging.Profile(caps.Profile),
		logging.Int("speeds", len(caps.Speeds)-1),
		logging.WriteMethod(p.inputs.WriteMethod),
	)
	return p.state
}

// Poll is the recurring media check. When the media changed since the last
// check the page re-resolves; the return value reports the change.
func (p *Page) Poll(ctx context.Context) (bool, error) {
	if p.watcher == nil {
		return false, nil
	}
	changed, err := p.watcher.Check(ctx)
	if err != nil {
		return false, err
	}
	if changed {
		p.Refresh(ctx)
	}
	return changed, nil
}

func (p *Page) enterUnavailable(err error) {
	p.state = StateMediaUnavailable
	p.caps = resolver.MediaCapabilities{}
	p.mediaErr = err
	p.warning = ""
}

func (p *Page) enterReady(caps resolver.MediaCapabilities) {
	p.state = StateMediaReady
	p.caps = caps
	p.mediaErr = nil

	if !caps.OffersSpeed(p.inputs.Speed) {
		p.inputs.Speed = mmc.SpeedMaximum
	}
	p.inputs.WriteMethod = caps.DefaultWriteMethod()
	if !caps.Simulation {
		p.inputs.Simulate = false
	}
	if !caps.BufferUnderrunProtection {
		p.inputs.WriteBUP = false
	}
}

// applySuggestion raises the missing-raw-method warning in either state and
// selects the suggested method only once media is ready.
func (p *Page) applySuggestion(logger *slog.Logger) {
	method, err := resolver.SuggestWriteMethod(p.device, p.image.HasTOC, p.image.MultiSession)
	if errors.Is(err, resolver.ErrNoRecommendedWriteMethod) {
		p.warning = p.loc.Label(i18n.KeyWarningCloneMethod)
		logging.WarnWithContext(logger, "no raw write method for image with TOC", "write_method_unavailable",
			logging.String(logging.FieldErrorHint, "use a recorder supporting RAW96R or RAW16"),
			logging.String(logging.FieldImpact, "the disc image may not be reproduced exactly"),
		)
		return
	}
	if p.state == StateMediaReady && method != mmc.WriteMethodNone && p.caps.OffersWriteMethod(method) {
		p.inputs.WriteMethod = method
	}
}

func (p *Page) contextLogger(ctx context.Context) *slog.Logger {
	return logging.WithContext(logging.WithDeviceID(ctx, p.deviceID), p.logger)
}

// State returns the current media state.
func (p *Page) State() State {
	return p.state
}

// Capabilities returns what the current media offers. It is zero while
// media is unavailable.
func (p *Page) Capabilities() resolver.MediaCapabilities {
	return p.caps
}

// MediaErr returns why media is unavailable, or nil.
func (p *Page) MediaErr() error {
	return p.mediaErr
}

// Inputs returns the current form values.
func (p *Page) Inputs() options.Inputs {
	return p.inputs
}

// Update edits the form values. The device id cannot be changed here; use
// SelectDevice. Options the image locks off stay off.
func (p *Page) Update(fn func(in *options.Inputs)) {
	if fn == nil {
		return
	}
	id := p.inputs.DeviceID
	fn(&p.inputs)
	p.inputs.DeviceID = id
	p.enforceLocks()
}

func (p *Page) notices() []Notice {
	var notices []Notice
	if p.image.HasTOC && !p.dismissed[NoticeRawImage] {
		notices = append(notices, Notice{ID: NoticeRawImage, Kind: NoticeInfo, Text: p.loc.Label(i18n.KeyNoticeRawImage)})
	}
	if !p.inputs.Fixate && !p.dismissed[NoticeNoFixation] {
		notices = append(notices, Notice{ID: NoticeNoFixation, Kind: NoticeWarning, Text: p.loc.Label(i18n.KeyNoticeNoFixation)})
	}
	return notices
}

// View builds a display snapshot.
func (p *Page) View() View {
	v := View{
		State:    p.state,
		DeviceID: p.deviceID,
		Inputs:   p.inputs,
		Warning:  p.warning,
		Notices:  p.notices(),
		OnTheFly: !p.image.DisableOnFly,
		Verify:   !p.image.DisableVerify,
	}
	if p.device != nil {
		v.DeviceName = p.device.Name()
	}
	if p.state != StateMediaReady {
		v.Status = p.loc.MediaReason(p.mediaErr)
		return v
	}

	v.Profile = p.caps.Profile
	v.Status = p.loc.Label(i18n.KeyMediaReady, p.caps.Profile.String())
	v.Simulate = p.caps.Simulation
	v.WriteBUP = p.caps.BufferUnderrunProtection
	v.Speeds = make([]SpeedOption, 0, len(p.caps.Speeds))
	for _, s := range p.caps.Speeds {
		v.Speeds = append(v.Speeds, SpeedOption{Value: s.KBps, Label: p.loc.SpeedLabel(s)})
	}
	v.Methods = make([]MethodOption, 0, len(p.caps.WriteMethods))
	for _, m := range p.caps.WriteMethods {
		v.Methods = append(v.Methods, MethodOption{Value: m, Label: p.loc.WriteMethodLabel(m)})
	}
	return v
}

// Apply validates the inputs and commits them. It is refused with
// resolver.ErrMediaUnavailable while media is unavailable. On any failure
// the committed options are left as they were.
func (p *Page) Apply(ctx context.Context) (options.BurnOptions, error) {
	if p.state != StateMediaReady {
		if p.mediaErr != nil {
			return options.BurnOptions{}, p.mediaErr
		}
		return options.BurnOptions{}, resolver.ErrMediaUnavailable
	}

	opts, err := options.Validate(p.inputs, p.caps)
	if err != nil {
		return options.BurnOptions{}, err
	}
	if p.onCommit != nil {
		if err := p.onCommit(ctx, opts, p.caps.Profile); err != nil {
			return options.BurnOptions{}, fmt.Errorf("persist burn options: %w", err)
		}
	}
	p.store.Replace(opts)

	p.contextLogger(ctx).Info("burn options committed",
		logging.String(logging.FieldEventType, "options_committed"),
		logging.WriteMethod(opts.WriteMethod),
		logging.Speed(opts.Speed),
		logging.Int("copies", opts.Copies),
	)
	return opts, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"discburn/internal/burnpage"
	"discburn/internal/config"
	"discburn/internal/drive"
	"discburn/internal/i18n"
	"discburn/internal/inventory"
	"discburn/internal/logging"
	"discburn/internal/mmc"
	"discburn/internal/options"
	"discburn/internal/settingsdb"
)

type commandContext struct {
	configFlag *string
	langFlag   *string
	sessionID  string

	// driveOptions is passed to every configured drive; tests use it to
	// replace system access.
	driveOptions []drive.Option

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, langFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		langFlag:   langFlag,
		sessionID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) language() string {
	if c.langFlag != nil {
		if lang := strings.TrimSpace(*c.langFlag); lang != "" {
			return lang
		}
	}
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg.Locale.Language
	}
	return ""
}

func (c *commandContext) localizer() (*i18n.Localizer, error) {
	return i18n.New(c.language())
}

func (c *commandContext) inventory() (*inventory.Inventory, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return inventory.Build(cfg, logger, c.driveOptions...)
}

// pageSession bundles a page with the settings database backing it.
type pageSession struct {
	page      *burnpage.Page
	store     *options.Store
	db        *settingsdb.Store
	inventory *inventory.Inventory
	localizer *i18n.Localizer
	logger    *slog.Logger

	lastCommit settingsdb.Commit
}

func (s *pageSession) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openPage opens the settings database, seeds the options store from it (or
// from the configured defaults), and initializes a page on deviceID, or on
// the committed device when deviceID is empty.
func (c *commandContext) openPage(ctx context.Context, deviceID string, image burnpage.Image) (*pageSession, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	loc, err := c.localizer()
	if err != nil {
		return nil, err
	}
	inv, err := c.inventory()
	if err != nil {
		return nil, err
	}

	db, err := settingsdb.Open(cfg)
	if err != nil {
		return nil, err
	}
	committed, err := db.LoadOrDefault(ctx, options.FromConfig(cfg.Burn))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store := options.NewStore(committed)
	dismissed, err := loadDismissed(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	session := &pageSession{store: store, db: db, inventory: inv, localizer: loc, logger: logger}
	page, err := burnpage.New(burnpage.Config{
		Registry:  inv.Registry,
		Store:     store,
		Localizer: loc,
		Logger:    logger,
		Image:     image,
		Dismissed: dismissed,
		OnCommit: func(ctx context.Context, opts options.BurnOptions, profile mmc.Profile) error {
			commit, err := db.Save(ctx, opts, settingsdb.CommitMeta{SessionID: c.sessionID, Profile: profile})
			if err != nil {
				return err
			}
			session.lastCommit = commit
			logger.Info("burn options saved",
				logging.String(logging.FieldCommitID, commit.ID),
				logging.String(logging.FieldDeviceID, opts.DeviceID),
			)
			return nil
		},
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if strings.TrimSpace(deviceID) == "" {
		err = page.Init(ctx)
	} else {
		err = page.SelectDevice(ctx, deviceID)
	}
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	session.page = page
	return session, nil
}

// loadDismissed reads dismissed notices, ignoring ids this build does not know.
func loadDismissed(ctx context.Context, db *settingsdb.Store) (map[burnpage.NoticeID]bool, error) {
	stored, err := db.DismissedNotices(ctx)
	if err != nil {
		return nil, err
	}
	dismissed := make(map[burnpage.NoticeID]bool, len(stored))
	for raw := range stored {
		if id, err := burnpage.ParseNoticeID(raw); err == nil {
			dismissed[id] = true
		}
	}
	return dismissed, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

package settingsdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"discburn/internal/mmc"
	"discburn/internal/options"
)

// Commit is one entry of the commit history.
type Commit struct {
	ID        string
	SessionID string
	DeviceID  string
	Profile   mmc.Profile
	Options   options.BurnOptions
	CreatedAt time.Time
}

// CommitMeta describes the context of a save.
type CommitMeta struct {
	SessionID string
	Profile   mmc.Profile
}

// Load returns the current options. found is false when nothing was saved yet.
func (s *Store) Load(ctx context.Context) (opts options.BurnOptions, found bool, err error) {
	ctx = ensureContext(ctx)
	var method string
	err = retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx, `SELECT device_id, speed, write_method, copies,
			on_the_fly, verify, eject, simulate, write_bup, pad_tracks, fixate
			FROM burn_options WHERE id = 1`).Scan(
			&opts.DeviceID, &opts.Speed, &method, &opts.Copies,
			&opts.OnTheFly, &opts.Verify, &opts.Eject, &opts.Simulate, &opts.WriteBUP, &opts.PadTracks, &opts.Fixate,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return options.BurnOptions{}, false, nil
	}
	if err != nil {
		return options.BurnOptions{}, false, fmt.Errorf("load burn options: %w", err)
	}
	if err := opts.WriteMethod.UnmarshalText([]byte(method)); err != nil {
		return options.BurnOptions{}, false, fmt.Errorf("load burn options: %w", err)
	}
	return opts, true, nil
}

// LoadOrDefault returns the saved options, or fallback when none exist.
func (s *Store) LoadOrDefault(ctx context.Context, fallback options.BurnOptions) (options.BurnOptions, error) {
	opts, found, err := s.Load(ctx)
	if err != nil {
		return options.BurnOptions{}, err
	}
	if !found {
		return fallback, nil
	}
	return opts, nil
}

// Save replaces the current options and appends a history entry in one
// transaction.
func (s *Store) Save(ctx context.Context, opts options.BurnOptions, meta CommitMeta) (Commit, error) {
	ctx = ensureContext(ctx)
	payload, err := json.Marshal(opts)
	if err != nil {
		return Commit{}, fmt.Errorf("encode burn options: %w", err)
	}

	commit := Commit{
		ID:        uuid.NewString(),
		SessionID: meta.SessionID,
		DeviceID:  opts.DeviceID,
		Profile:   meta.Profile,
		Options:   opts,
		CreatedAt: s.now().UTC(),
	}
	stamp := commit.CreatedAt.Format(time.RFC3339Nano)

	err = retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, `INSERT INTO burn_options (id, device_id, speed, write_method, copies,
				on_the_fly, verify, eject, simulate, write_bup, pad_tracks, fixate, commit_id, updated_at)
			VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				device_id = excluded.device_id,
				speed = excluded.speed,
				write_method = excluded.write_method,
				copies = excluded.copies,
				on_the_fly = excluded.on_the_fly,
				verify = excluded.verify,
				eject = excluded.eject,
				simulate = excluded.simulate,
				write_bup = excluded.write_bup,
				pad_tracks = excluded.pad_tracks,
				fixate = excluded.fixate,
				commit_id = excluded.commit_id,
				updated_at = excluded.updated_at`,
			opts.DeviceID, opts.Speed, opts.WriteMethod.String(), opts.Copies,
			opts.OnTheFly, opts.Verify, opts.Eject, opts.Simulate, opts.WriteBUP, opts.PadTracks, opts.Fixate,
			commit.ID, stamp,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO commits (commit_id, session_id, device_id, profile, options_json, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			commit.ID, nullableString(commit.SessionID), commit.DeviceID, profileToken(commit.Profile), string(payload), stamp,
		); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return Commit{}, fmt.Errorf("save burn options: %w", err)
	}
	return commit, nil
}

// History returns up to limit commits, newest first. A limit <= 0 returns all.
func (s *Store) History(ctx context.Context, limit int) ([]Commit, error) {
	ctx = ensureContext(ctx)
	query := `SELECT commit_id, session_id, device_id, profile, options_json, created_at
		FROM commits ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var commits []Commit
	err := retryOnBusy(ctx, func() error {
		commits = commits[:0]
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				c         Commit
				sessionID sql.NullString
				profile   sql.NullString
				payload   string
				stamp     string
			)
			if err := rows.Scan(&c.ID, &sessionID, &c.DeviceID, &profile, &payload, &stamp); err != nil {
				return err
			}
			c.SessionID = sessionID.String
			if c.Profile, err = mmc.ParseProfile(profile.String); err != nil {
				return fmt.Errorf("commit %s: %w", c.ID, err)
			}
			if err := json.Unmarshal([]byte(payload), &c.Options); err != nil {
				return fmt.Errorf("commit %s: decode options: %w", c.ID, err)
			}
			if c.CreatedAt, err = time.Parse(time.RFC3339Nano, stamp); err != nil {
				return fmt.Errorf("commit %s: parse timestamp: %w", c.ID, err)
			}
			commits = append(commits, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list commits: %w", err)
	}
	return commits, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func profileToken(p mmc.Profile) any {
	if p == mmc.ProfileNone {
		return nil
	}
	return p.Token()
}

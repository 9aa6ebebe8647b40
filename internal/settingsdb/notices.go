package settingsdb

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DismissNotice records that the notice should not be shown again.
// Dismissing twice keeps the first timestamp.
func (s *Store) DismissNotice(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("dismiss notice: empty id")
	}
	stamp := s.now().UTC().Format(time.RFC3339Nano)
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO dismissed_notices (notice_id, dismissed_at) VALUES (?, ?)
			ON CONFLICT(notice_id) DO NOTHING`, id, stamp)
		if err != nil {
			return fmt.Errorf("dismiss notice %s: %w", id, err)
		}
		return nil
	})
}

// RestoreNotices shows the given notices again, or every notice when ids is empty.
func (s *Store) RestoreNotices(ctx context.Context, ids ...string) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		if len(ids) == 0 {
			if _, err := s.db.ExecContext(ctx, `DELETE FROM dismissed_notices`); err != nil {
				return fmt.Errorf("restore notices: %w", err)
			}
			return nil
		}
		for _, id := range ids {
			if _, err := s.db.ExecContext(ctx, `DELETE FROM dismissed_notices WHERE notice_id = ?`, id); err != nil {
				return fmt.Errorf("restore notice %s: %w", id, err)
			}
		}
		return nil
	})
}

// DismissedNotices returns the ids of dismissed notices.
func (s *Store) DismissedNotices(ctx context.Context) (map[string]bool, error) {
	ctx = ensureContext(ctx)
	dismissed := make(map[string]bool)
	err := retryOnBusy(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, `SELECT notice_id FROM dismissed_notices`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			dismissed[id] = true
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list dismissed notices: %w", err)
	}
	return dismissed, nil
}

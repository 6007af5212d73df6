// Package coachcache remembers the last successful registrant's contact
// details for pre-fill convenience. It is backed by the durable preference
// store; read/write failures are logged and swallowed, so the cache degrades
// to empty rather than failing the caller.
package coachcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"fieldsync/internal/adapters/storage/prefs"
	"fieldsync/internal/domain/coach"
)

// Cache wraps the preference store with JSON encoding under KeyCoachInfo.
type Cache struct {
	prefs prefs.Store
}

// New creates a coach identity cache over the given preference store.
func New(p prefs.Store) *Cache {
	return &Cache{prefs: p}
}

// Get returns the remembered identity, or nil when none is stored, the
// backing store is unavailable, or the stored value no longer passes
// validation. A stale or hand-edited entry must not leak into form pre-fill.
func (c *Cache) Get(ctx context.Context) *coach.Identity {
	raw, err := c.prefs.Get(ctx, prefs.KeyCoachInfo)
	if err != nil {
		if !errors.Is(err, prefs.ErrNotFound) {
			slog.Warn("prefs_event", "event", "coach_info_read_failed", "error", err.Error())
		}
		return nil
	}

	var identity coach.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		slog.Warn("prefs_event", "event", "coach_info_decode_failed", "error", err.Error())
		return nil
	}
	if err := identity.Validate(); err != nil {
		slog.Warn("prefs_event", "event", "coach_info_invalid", "error", err.Error())
		return nil
	}
	return &identity
}

// Set overwrites the remembered identity. Write failures are swallowed.
// POST: On success the identity is persisted under KeyCoachInfo
func (c *Cache) Set(ctx context.Context, identity coach.Identity) {
	raw, err := json.Marshal(identity)
	if err != nil {
		slog.Warn("prefs_event", "event", "coach_info_encode_failed", "error", err.Error())
		return
	}
	if err := c.prefs.Set(ctx, prefs.KeyCoachInfo, string(raw)); err != nil {
		slog.Warn("prefs_event", "event", "coach_info_write_failed", "error", err.Error())
	}
}

// Clear forgets the remembered identity. Failures are swallowed.
func (c *Cache) Clear(ctx context.Context) {
	if err := c.prefs.Delete(ctx, prefs.KeyCoachInfo); err != nil {
		slog.Warn("prefs_event", "event", "coach_info_clear_failed", "error", err.Error())
	}
}

package prefs

import (
	"context"
	"errors"
)

// Persisted local keys. Both are read at startup and must tolerate absence
// and storage failure.
const (
	KeyAdminAuthenticated = "isAdminAuthenticated"
	KeyCoachInfo          = "fieldsync-coach-info"
)

// AdminAuthenticatedValue is the sentinel stored under KeyAdminAuthenticated.
const AdminAuthenticatedValue = "true"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("pref not found")

// Store persists small string preferences across restarts.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

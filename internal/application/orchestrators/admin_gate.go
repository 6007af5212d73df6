package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldsync/internal/adapters/storage/prefs"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the admin password does not match.
var ErrInvalidCredentials = errors.New("incorrect password")

// DefaultLoginLatency is the artificial delay applied before checking the
// password. Cosmetic only — it drives the login spinner and carries no
// correctness requirement.
const DefaultLoginLatency = 500 * time.Millisecond

// AdminGateDeps holds dependencies for the admin gate.
// The gate is a UI convenience, not a security boundary: one shared
// password, no lockout, no server-side account.
type AdminGateDeps struct {
	PrefStore    prefs.Store
	PasswordHash string        // bcrypt hash of the admin password
	Latency      time.Duration // simulated network latency; zero in tests
}

// HashAdminPassword hashes the configured admin password with bcrypt cost 12.
func HashAdminPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ExecuteAdminLogin checks the password and opens the admin gate.
// The authenticated flag is persisted so the gate survives restarts; a
// persistence failure is logged and swallowed — the login still succeeds.
// POST: On success, prefs holds isAdminAuthenticated="true"
func ExecuteAdminLogin(ctx context.Context, password string, deps AdminGateDeps) error {
	if deps.Latency > 0 {
		select {
		case <-time.After(deps.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(deps.PasswordHash), []byte(password)); err != nil {
		slog.Info("auth_event", "event", "admin_login_failed")
		return ErrInvalidCredentials
	}

	if err := deps.PrefStore.Set(ctx, prefs.KeyAdminAuthenticated, prefs.AdminAuthenticatedValue); err != nil {
		slog.Warn("prefs_event", "event", "admin_flag_write_failed", "error", err.Error())
	}

	slog.Info("auth_event", "event", "admin_login_success")
	return nil
}

// ExecuteAdminLogout closes the admin gate and clears the persisted flag.
// Persistence failures are logged and swallowed.
func ExecuteAdminLogout(ctx context.Context, deps AdminGateDeps) {
	if err := deps.PrefStore.Delete(ctx, prefs.KeyAdminAuthenticated); err != nil {
		slog.Warn("prefs_event", "event", "admin_flag_clear_failed", "error", err.Error())
	}
	slog.Info("auth_event", "event", "admin_logout")
}

// IsAdminAuthenticated reads the persisted gate flag. Absence and storage
// failure both read as "not authenticated".
func IsAdminAuthenticated(ctx context.Context, store prefs.Store) bool {
	value, err := store.Get(ctx, prefs.KeyAdminAuthenticated)
	if err != nil {
		if !errors.Is(err, prefs.ErrNotFound) {
			slog.Warn("prefs_event", "event", "admin_flag_read_failed", "error", err.Error())
		}
		return false
	}
	return value == prefs.AdminAuthenticatedValue
}

package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fieldsync/internal/domain/session"

	"github.com/google/uuid"
)

// SessionStoreForSeed defines the store interface needed by SeedDemo.
type SessionStoreForSeed interface {
	List(ctx context.Context) ([]session.Session, error)
	Save(ctx context.Context, s session.Session) error
}

// SeedDemoDeps holds dependencies for SeedDemo.
type SeedDemoDeps struct {
	SessionStore SessionStoreForSeed
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSeedDemo loads the demo session collection for development:
// one session today with a checked-in team, a handful of future sessions
// including a full one. Idempotent — a non-empty store is left untouched.
func ExecuteSeedDemo(ctx context.Context, deps SeedDemoDeps) error {
	generateID := deps.GenerateID
	if generateID == nil {
		generateID = func() string { return uuid.New().String() }
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	existing, err := deps.SessionStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	today := session.Midnight(now())

	reg := func(team, coachName, email, phone string, checkedIn bool) session.Registration {
		return session.Registration{
			ID: generateID(), TeamName: team, CoachName: coachName,
			CoachEmail: email, CoachPhone: phone, CheckedIn: checkedIn,
		}
	}

	sessions := []session.Session{
		{
			ID: generateID(), Date: today, Time: "15:00 - 16:00",
			Capacity: session.DefaultCapacity, Status: session.StatusActive,
			Registrations: []session.Registration{
				reg("FC Dynamos", "Alex Ray", "alex@example.com", "111-222-3333", false),
				reg("City United", "Sam Jones", "sam@example.com", "444-555-6666", true),
			},
		},
		{
			ID: generateID(), Date: today.AddDate(0, 0, 2), Time: "16:00 - 17:00",
			Capacity: session.DefaultCapacity, Status: session.StatusActive,
			Registrations: []session.Registration{
				reg("FC Eagles", "John Smith", "john@example.com", "123-456-7890", false),
				reg("City Rovers", "Jane Doe", "jane@example.com", "234-567-8901", false),
			},
		},
		{
			ID: generateID(), Date: today.AddDate(0, 0, 3), Time: "17:00 - 18:00",
			Capacity: session.DefaultCapacity, Status: session.StatusActive,
		},
		{
			ID: generateID(), Date: today.AddDate(0, 0, 4), Time: "18:00 - 19:00",
			Capacity: session.DefaultCapacity, Status: session.StatusActive,
			Registrations: []session.Registration{
				reg("United FC", "Peter Jones", "peter@example.com", "345-678-9012", true),
				reg("Real Athletic", "Mary Brown", "mary@example.com", "456-789-0123", false),
				reg("FC Strikers", "David Williams", "david@example.com", "567-890-1234", false),
				reg("County FC", "Susan Taylor", "susan@example.com", "678-901-2345", false),
				reg("AFC Giants", "Michael Clark", "michael@example.com", "789-012-3456", false),
				reg("Sporting Club", "Linda Harris", "linda@example.com", "890-123-4567", false),
			},
		},
		{
			ID: generateID(), Date: today.AddDate(0, 0, 5), Time: "19:00 - 20:00",
			Capacity: session.DefaultCapacity, Status: session.StatusActive,
			Registrations: []session.Registration{
				reg("Warriors", "Chris Green", "chris@example.com", "901-234-5678", true),
			},
		},
	}

	for _, s := range sessions {
		if err := deps.SessionStore.Save(ctx, s); err != nil {
			return err
		}
	}

	slog.Info("session_event", "event", "demo_data_seeded", "sessions", len(sessions))
	return nil
}

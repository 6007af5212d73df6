package coachcache_test

import (
	"context"
	"errors"
	"testing"

	"fieldsync/internal/adapters/storage/prefs"
	"fieldsync/internal/application/coachcache"
	"fieldsync/internal/domain/coach"
)

// mockPrefStore implements prefs.Store for testing.
type mockPrefStore struct {
	values  map[string]string
	failing bool
}

func (m *mockPrefStore) Get(_ context.Context, key string) (string, error) {
	if m.failing {
		return "", errors.New("storage unavailable")
	}
	v, ok := m.values[key]
	if !ok {
		return "", prefs.ErrNotFound
	}
	return v, nil
}

func (m *mockPrefStore) Set(_ context.Context, key, value string) error {
	if m.failing {
		return errors.New("storage unavailable")
	}
	m.values[key] = value
	return nil
}

func (m *mockPrefStore) Delete(_ context.Context, key string) error {
	if m.failing {
		return errors.New("storage unavailable")
	}
	delete(m.values, key)
	return nil
}

func newMockPrefStore() *mockPrefStore {
	return &mockPrefStore{values: make(map[string]string)}
}

// TestCache_SetGetClear tests the remember/recall/forget round trip.
func TestCache_SetGetClear(t *testing.T) {
	store := newMockPrefStore()
	cache := coachcache.New(store)
	ctx := context.Background()

	if got := cache.Get(ctx); got != nil {
		t.Errorf("expected nil before Set, got %+v", got)
	}

	identity := coach.Identity{CoachName: "John Smith", CoachEmail: "john@example.com", CoachPhone: "123-456-7890"}
	cache.Set(ctx, identity)

	got := cache.Get(ctx)
	if got == nil {
		t.Fatal("expected remembered identity, got nil")
	}
	if *got != identity {
		t.Errorf("expected %+v, got %+v", identity, *got)
	}

	cache.Clear(ctx)
	if got := cache.Get(ctx); got != nil {
		t.Errorf("expected nil after Clear, got %+v", got)
	}
}

// TestCache_OverwritesOnSet tests that each Set replaces the previous identity.
func TestCache_OverwritesOnSet(t *testing.T) {
	cache := coachcache.New(newMockPrefStore())
	ctx := context.Background()

	cache.Set(ctx, coach.Identity{CoachName: "John Smith", CoachEmail: "john@example.com", CoachPhone: "123-456-7890"})
	cache.Set(ctx, coach.Identity{CoachName: "Jane Doe", CoachEmail: "jane@example.com", CoachPhone: "234-567-8901"})

	got := cache.Get(ctx)
	if got == nil || got.CoachEmail != "jane@example.com" {
		t.Errorf("expected latest identity, got %+v", got)
	}
}

// TestCache_DegradesWhenStoreFails tests that storage failure never reaches
// the caller: reads degrade to nil, writes and clears are silent.
func TestCache_DegradesWhenStoreFails(t *testing.T) {
	store := newMockPrefStore()
	store.failing = true
	cache := coachcache.New(store)
	ctx := context.Background()

	cache.Set(ctx, coach.Identity{CoachName: "John Smith", CoachEmail: "john@example.com", CoachPhone: "123-456-7890"})
	if got := cache.Get(ctx); got != nil {
		t.Errorf("expected nil from failing store, got %+v", got)
	}
	cache.Clear(ctx)
}

// TestCache_DegradesOnCorruptValue tests that an undecodable stored value
// reads as empty.
func TestCache_DegradesOnCorruptValue(t *testing.T) {
	store := newMockPrefStore()
	store.values[prefs.KeyCoachInfo] = "{not json"
	cache := coachcache.New(store)

	if got := cache.Get(context.Background()); got != nil {
		t.Errorf("expected nil for corrupt value, got %+v", got)
	}
}

// TestCache_DegradesOnInvalidIdentity tests that a stored value which decodes
// but fails identity validation reads as empty rather than pre-filling forms
// with bad data.
func TestCache_DegradesOnInvalidIdentity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"bad email", `{"coachName":"John Smith","coachEmail":"not-an-email","coachPhone":"123-456-7890"}`},
		{"missing name", `{"coachName":"","coachEmail":"john@example.com","coachPhone":"123-456-7890"}`},
		{"bad phone", `{"coachName":"John Smith","coachEmail":"john@example.com","coachPhone":"abc"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockPrefStore()
			store.values[prefs.KeyCoachInfo] = tt.value
			cache := coachcache.New(store)

			if got := cache.Get(context.Background()); got != nil {
				t.Errorf("expected nil for invalid identity, got %+v", got)
			}
		})
	}
}

package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanchar/internal/models/domain_models"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewInMemorySessionStore()

	record := store.Create(12.97, 77.59)
	require.NotEmpty(t, record.SessionID)
	assert.Equal(t, 12.97, record.Search.OriginLat)
	assert.Equal(t, 12.97, record.Search.SearchLat)

	got, ok := store.Get(record.SessionID)
	require.True(t, ok)
	assert.Equal(t, record.SessionID, got.SessionID)

	// Mutations are invisible until saved.
	got.Search.RadiusKm = 10
	fresh, _ := store.Get(record.SessionID)
	assert.Zero(t, fresh.Search.RadiusKm)

	store.Save(got)
	fresh, _ = store.Get(record.SessionID)
	assert.Equal(t, 10.0, fresh.Search.RadiusKm)

	store.Delete(record.SessionID)
	_, ok = store.Get(record.SessionID)
	assert.False(t, ok)
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewInMemorySessionStore()
	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestSharedPlanStore(t *testing.T) {
	store := NewInMemorySharedPlanStore()

	plan := &domain_models.Plan{
		Entries: []domain_models.PlanEntry{{PlaceID: "p1", PlaceName: "Cubbon Park"}},
	}

	code := store.Save("Saturday Out", "chill", plan)
	require.Len(t, code, 6)

	shared, ok := store.Get(code)
	require.True(t, ok)
	assert.Equal(t, "Saturday Out", shared.Title)
	assert.Equal(t, "chill", shared.Mood)
	assert.Equal(t, code, shared.ShareCode)
	require.Len(t, shared.Plan.Entries, 1)
	assert.Equal(t, "p1", shared.Plan.Entries[0].PlaceID)

	_, ok = store.Get("ZZZZZZ")
	assert.False(t, ok)
}

func TestSharedPlanStoreCodesDiffer(t *testing.T) {
	store := NewInMemorySharedPlanStore()
	plan := &domain_models.Plan{}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code := store.Save("t", "m", plan)
		assert.False(t, seen[code])
		seen[code] = true
	}
}

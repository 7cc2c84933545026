package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduly/models"
)

func testState() models.SessionState {
	return models.SessionState{
		School:      "Pitt",
		Major:       "Computer Science",
		Term:        "2251",
		Courses:     []string{"CS0441", "CS1550"},
		Preferences: models.Preferences{NoDays: []string{"Fri"}},
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	require.NoError(t, store.Create(ctx, "s1", testState()))

	rec, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", rec.SessionID)
	assert.Equal(t, []string{"CS0441", "CS1550"}, rec.State.Courses)

	updated := testState()
	updated.CompletedCourses = []string{"CS0441"}
	require.NoError(t, store.Update(ctx, "s1", updated))

	rec, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS0441"}, rec.State.CompletedCourses)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, "missing", testState()), ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Millisecond)

	require.NoError(t, store.Create(ctx, "s1", testState()))
	require.NoError(t, store.Create(ctx, "s2", testState()))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := store.CleanupExpired(ctx)
	require.NoError(t, err)
	// s1 was already dropped by the expired Get.
	assert.Equal(t, 1, removed)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	require.NoError(t, store.Create(ctx, "s1", testState()))

	rec, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	rec.State.School = "changed"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Pitt", again.State.School)
}

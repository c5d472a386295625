package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Carlosma7/carlosma7-cv/pkg/models"
)

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore(zap.NewNop())

	entry := store.Get("education")
	assert.Equal(t, StateIdle, entry.State)
	assert.Empty(t, entry.Collection)

	token := store.Begin("education")
	assert.Equal(t, StateLoading, store.Get("education").State)

	collection := models.Collection{{Title: "BSc"}}
	require.True(t, store.Complete("education", token, collection))

	entry = store.Get("education")
	assert.Equal(t, StateLoaded, entry.State)
	assert.Equal(t, collection, entry.Collection)
}

func TestStore_StaleTokensDiscarded(t *testing.T) {
	store := NewStore(zap.NewNop())

	first := store.Begin("skills")
	second := store.Begin("skills")

	// The first request completes after the second was issued; its result
	// must not land.
	assert.False(t, store.Complete("skills", first, models.Collection{{Skill: "stale"}}))
	assert.Empty(t, store.Get("skills").Collection)

	require.True(t, store.Complete("skills", second, models.Collection{{Skill: "Go"}}))
	assert.Equal(t, "Go", store.Get("skills").Collection[0].Skill)

	// A stale failure must not clobber the fresh result either.
	assert.False(t, store.Fail("skills", first, errors.New("late failure")))
	assert.Equal(t, StateLoaded, store.Get("skills").State)
}

func TestStore_FailKeepsPreviousCollection(t *testing.T) {
	store := NewStore(zap.NewNop())

	token := store.Begin("projects")
	require.True(t, store.Complete("projects", token, models.Collection{{Project: "cv"}}))

	token = store.Begin("projects")
	require.True(t, store.Fail("projects", token, errors.New("boom")))

	entry := store.Get("projects")
	assert.Equal(t, StateFailed, entry.State)
	assert.Error(t, entry.Err)
	assert.Equal(t, "cv", entry.Collection[0].Project)
}

func TestStore_InvalidateKeepsCollection(t *testing.T) {
	store := NewStore(zap.NewNop())

	token := store.Begin("locations")
	require.True(t, store.Complete("locations", token, models.Collection{{City: "Granada"}}))

	store.Invalidate("locations")

	entry := store.Get("locations")
	assert.Equal(t, StateIdle, entry.State)
	assert.Equal(t, "Granada", entry.Collection[0].City)
}

func TestStore_ResourcesAreIndependent(t *testing.T) {
	store := NewStore(zap.NewNop())

	eduToken := store.Begin("education")
	expToken := store.Begin("experience")

	require.True(t, store.Fail("education", eduToken, errors.New("boom")))
	require.True(t, store.Complete("experience", expToken, models.Collection{{Title: "Dev"}}))

	assert.Equal(t, StateFailed, store.Get("education").State)
	assert.Equal(t, StateLoaded, store.Get("experience").State)
}

package store

import (
	"context"
	"errors"
	"testing"

	"ftm/src/models"

	"github.com/stretchr/testify/assert"
)

var errPrimaryDown = errors.New("connection refused")

// failingEvents simulates an unreachable primary.
type failingEvents struct{}

func (failingEvents) List(ctx context.Context, workspaceID string) ([]models.Event, error) {
	return nil, errPrimaryDown
}
func (failingEvents) Get(ctx context.Context, workspaceID, id string) (*models.Event, error) {
	return nil, errPrimaryDown
}
func (failingEvents) Create(ctx context.Context, event *models.Event) error { return errPrimaryDown }
func (failingEvents) Save(ctx context.Context, event *models.Event) error   { return errPrimaryDown }
func (failingEvents) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	return false, errPrimaryDown
}

type failingStore struct {
	Store
}

func (failingStore) Events() EventStore { return failingEvents{} }

func TestFallbackServesLocalWhenPrimaryDown(t *testing.T) {
	ctx := context.Background()
	local := NewMemory()
	fb := NewFallback(failingStore{}, local)

	event := models.Event{ID: "e-1", WorkspaceID: "ws-1", Opponent: "Lakers"}

	// The write lands locally even though the primary errors.
	assert.Nil(t, fb.Events().Create(ctx, &event))

	got, err := fb.Events().Get(ctx, "ws-1", "e-1")
	assert.Nil(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Lakers", got.Opponent)

	events, err := fb.Events().List(ctx, "ws-1")
	assert.Nil(t, err)
	assert.Len(t, events, 1)

	ok, err := fb.Events().Delete(ctx, "ws-1", "e-1")
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestFallbackPrefersPrimary(t *testing.T) {
	ctx := context.Background()
	primary := NewMemory()
	local := NewMemory()
	fb := NewFallback(primary, local)

	assert.Nil(t, fb.Events().Create(ctx, &models.Event{ID: "e-1", WorkspaceID: "ws-1", Opponent: "Lakers"}))

	// Both stores hold the write.
	fromPrimary, _ := primary.Events().Get(ctx, "ws-1", "e-1")
	assert.NotNil(t, fromPrimary)
	fromLocal, _ := local.Events().Get(ctx, "ws-1", "e-1")
	assert.NotNil(t, fromLocal)

	// Reads come from the primary when it is healthy.
	_ = primary.Events().Save(ctx, &models.Event{ID: "e-1", WorkspaceID: "ws-1", Opponent: "Suns"})
	got, err := fb.Events().Get(ctx, "ws-1", "e-1")
	assert.Nil(t, err)
	assert.Equal(t, "Suns", got.Opponent)
}

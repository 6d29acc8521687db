package store

import (
	"context"

	"ftm/src/config"
	"ftm/src/db"
	"ftm/src/models"
)

// Not-found is a nil/false sentinel, not an error. Callers must check.
//
// Reads and deletes are scoped to a workspace: an id belonging to another
// tenant behaves like an unknown id. An empty workspaceID skips the scoping
// and is reserved for internal jobs.

type EventStore interface {
	List(ctx context.Context, workspaceID string) ([]models.Event, error)
	Get(ctx context.Context, workspaceID, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Save(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

type PersonStore interface {
	List(ctx context.Context, workspaceID string) ([]models.Person, error)
	Get(ctx context.Context, workspaceID, id string) (*models.Person, error)
	FindByNameCompany(ctx context.Context, workspaceID, name, company string) (*models.Person, error)
	Create(ctx context.Context, person *models.Person) error
	Save(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

type RequestStore interface {
	List(ctx context.Context, workspaceID string) ([]models.TicketRequest, error)
	Get(ctx context.Context, workspaceID, id string) (*models.TicketRequest, error)
	Create(ctx context.Context, request *models.TicketRequest) error
	Save(ctx context.Context, request *models.TicketRequest) error
	Delete(ctx context.Context, workspaceID, id string) (bool, error)
}

type WorkspaceStore interface {
	List(ctx context.Context) ([]models.Workspace, error)
	Get(ctx context.Context, id string) (*models.Workspace, error)
	FindByKey(ctx context.Context, key string) (*models.Workspace, error)
	Create(ctx context.Context, workspace *models.Workspace) error
	Save(ctx context.Context, workspace *models.Workspace) error
}

// Store bundles the per-entity repositories behind one injection point.
type Store interface {
	Events() EventStore
	People() PersonStore
	Requests() RequestStore
	Workspaces() WorkspaceStore
}

var current Store

// Use replaces the active store. Tests inject the in-memory implementation
// the same way db.NewDB injects a mock gorm handle.
func Use(s Store) {
	current = s
}

func Current() Store {
	if current != nil {
		return current
	}
	g := NewGorm(db.GetDb())
	if config.PersistenceFallback() {
		current = NewFallback(g, NewMemory())
	} else {
		current = g
	}
	return current
}

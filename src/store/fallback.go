package store

import (
	"context"
	"log"

	"ftm/src/models"
	"ftm/src/monitoring"
)

// Fallback is the explicit form of the dual-write policy: every write is
// mirrored into the local store, and a failing primary is served from the
// local copy instead of surfacing the error. Fallback hits are logged and
// counted in monitoring.FallbackOps.
type Fallback struct {
	primary Store
	local   Store
}

func NewFallback(primary, local Store) *Fallback {
	return &Fallback{primary: primary, local: local}
}

func (f *Fallback) Events() EventStore {
	return &fbEvents{primary: f.primary.Events(), local: f.local.Events()}
}
func (f *Fallback) People() PersonStore {
	return &fbPeople{primary: f.primary.People(), local: f.local.People()}
}
func (f *Fallback) Requests() RequestStore {
	return &fbRequests{primary: f.primary.Requests(), local: f.local.Requests()}
}
func (f *Fallback) Workspaces() WorkspaceStore {
	return &fbWorkspaces{primary: f.primary.Workspaces(), local: f.local.Workspaces()}
}

func fellBack(entity, op string, err error) {
	log.Printf("[store] %s.%s falling back to local store: %s\n", entity, op, err.Error())
	monitoring.FallbackOps.WithLabelValues(entity, op).Inc()
}

type fbEvents struct {
	primary EventStore
	local   EventStore
}

func (s *fbEvents) List(ctx context.Context, workspaceID string) ([]models.Event, error) {
	events, err := s.primary.List(ctx, workspaceID)
	if err != nil {
		fellBack("events", "list", err)
		return s.local.List(ctx, workspaceID)
	}
	return events, nil
}

func (s *fbEvents) Get(ctx context.Context, workspaceID, id string) (*models.Event, error) {
	event, err := s.primary.Get(ctx, workspaceID, id)
	if err != nil {
		fellBack("events", "get", err)
		return s.local.Get(ctx, workspaceID, id)
	}
	return event, nil
}

func (s *fbEvents) Create(ctx context.Context, event *models.Event) error {
	s.local.Create(ctx, event)
	if err := s.primary.Create(ctx, event); err != nil {
		fellBack("events", "create", err)
	}
	return nil
}

func (s *fbEvents) Save(ctx context.Context, event *models.Event) error {
	s.local.Save(ctx, event)
	if err := s.primary.Save(ctx, event); err != nil {
		fellBack("events", "save", err)
	}
	return nil
}

func (s *fbEvents) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	localOK, _ := s.local.Delete(ctx, workspaceID, id)
	ok, err := s.primary.Delete(ctx, workspaceID, id)
	if err != nil {
		fellBack("events", "delete", err)
		return localOK, nil
	}
	return ok || localOK, nil
}

type fbPeople struct {
	primary PersonStore
	local   PersonStore
}

func (s *fbPeople) List(ctx context.Context, workspaceID string) ([]models.Person, error) {
	people, err := s.primary.List(ctx, workspaceID)
	if err != nil {
		fellBack("people", "list", err)
		return s.local.List(ctx, workspaceID)
	}
	return people, nil
}

func (s *fbPeople) Get(ctx context.Context, workspaceID, id string) (*models.Person, error) {
	person, err := s.primary.Get(ctx, workspaceID, id)
	if err != nil {
		fellBack("people", "get", err)
		return s.local.Get(ctx, workspaceID, id)
	}
	return person, nil
}

func (s *fbPeople) FindByNameCompany(ctx context.Context, workspaceID, name, company string) (*models.Person, error) {
	person, err := s.primary.FindByNameCompany(ctx, workspaceID, name, company)
	if err != nil {
		fellBack("people", "find", err)
		return s.local.FindByNameCompany(ctx, workspaceID, name, company)
	}
	return person, nil
}

func (s *fbPeople) Create(ctx context.Context, person *models.Person) error {
	s.local.Create(ctx, person)
	if err := s.primary.Create(ctx, person); err != nil {
		fellBack("people", "create", err)
	}
	return nil
}

func (s *fbPeople) Save(ctx context.Context, person *models.Person) error {
	s.local.Save(ctx, person)
	if err := s.primary.Save(ctx, person); err != nil {
		fellBack("people", "save", err)
	}
	return nil
}

func (s *fbPeople) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	localOK, _ := s.local.Delete(ctx, workspaceID, id)
	ok, err := s.primary.Delete(ctx, workspaceID, id)
	if err != nil {
		fellBack("people", "delete", err)
		return localOK, nil
	}
	return ok || localOK, nil
}

type fbRequests struct {
	primary RequestStore
	local   RequestStore
}

func (s *fbRequests) List(ctx context.Context, workspaceID string) ([]models.TicketRequest, error) {
	requests, err := s.primary.List(ctx, workspaceID)
	if err != nil {
		fellBack("requests", "list", err)
		return s.local.List(ctx, workspaceID)
	}
	return requests, nil
}

func (s *fbRequests) Get(ctx context.Context, workspaceID, id string) (*models.TicketRequest, error) {
	request, err := s.primary.Get(ctx, workspaceID, id)
	if err != nil {
		fellBack("requests", "get", err)
		return s.local.Get(ctx, workspaceID, id)
	}
	return request, nil
}

func (s *fbRequests) Create(ctx context.Context, request *models.TicketRequest) error {
	s.local.Create(ctx, request)
	if err := s.primary.Create(ctx, request); err != nil {
		fellBack("requests", "create", err)
	}
	return nil
}

func (s *fbRequests) Save(ctx context.Context, request *models.TicketRequest) error {
	s.local.Save(ctx, request)
	if err := s.primary.Save(ctx, request); err != nil {
		fellBack("requests", "save", err)
	}
	return nil
}

func (s *fbRequests) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	localOK, _ := s.local.Delete(ctx, workspaceID, id)
	ok, err := s.primary.Delete(ctx, workspaceID, id)
	if err != nil {
		fellBack("requests", "delete", err)
		return localOK, nil
	}
	return ok || localOK, nil
}

type fbWorkspaces struct {
	primary WorkspaceStore
	local   WorkspaceStore
}

func (s *fbWorkspaces) List(ctx context.Context) ([]models.Workspace, error) {
	workspaces, err := s.primary.List(ctx)
	if err != nil {
		fellBack("workspaces", "list", err)
		return s.local.List(ctx)
	}
	return workspaces, nil
}

func (s *fbWorkspaces) Get(ctx context.Context, id string) (*models.Workspace, error) {
	workspace, err := s.primary.Get(ctx, id)
	if err != nil {
		fellBack("workspaces", "get", err)
		return s.local.Get(ctx, id)
	}
	return workspace, nil
}

func (s *fbWorkspaces) FindByKey(ctx context.Context, key string) (*models.Workspace, error) {
	workspace, err := s.primary.FindByKey(ctx, key)
	if err != nil {
		fellBack("workspaces", "find", err)
		return s.local.FindByKey(ctx, key)
	}
	return workspace, nil
}

func (s *fbWorkspaces) Create(ctx context.Context, workspace *models.Workspace) error {
	s.local.Create(ctx, workspace)
	if err := s.primary.Create(ctx, workspace); err != nil {
		fellBack("workspaces", "create", err)
	}
	return nil
}

func (s *fbWorkspaces) Save(ctx context.Context, workspace *models.Workspace) error {
	s.local.Save(ctx, workspace)
	if err := s.primary.Save(ctx, workspace); err != nil {
		fellBack("workspaces", "save", err)
	}
	return nil
}

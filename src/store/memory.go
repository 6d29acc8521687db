package store

import (
	"context"
	"strings"
	"sync"

	"ftm/src/models"
)

// Memory keeps whole collections in process memory. It backs tests and the
// persistence fallback path. Single-writer semantics: concurrent writers are
// last-write-wins, matching the aggregate write-back model.
type Memory struct {
	mu         sync.RWMutex
	events     []models.Event
	people     []models.Person
	requests   []models.TicketRequest
	workspaces []models.Workspace
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Events() EventStore         { return &memEvents{m} }
func (m *Memory) People() PersonStore        { return &memPeople{m} }
func (m *Memory) Requests() RequestStore     { return &memRequests{m} }
func (m *Memory) Workspaces() WorkspaceStore { return &memWorkspaces{m} }

func cloneEvent(e models.Event) models.Event {
	out := e
	out.Tickets = make([]models.Ticket, len(e.Tickets))
	copy(out.Tickets, e.Tickets)
	return out
}

func clonePerson(p models.Person) models.Person {
	out := p
	out.AssignmentHistory = make([]models.AssignmentHistory, len(p.AssignmentHistory))
	copy(out.AssignmentHistory, p.AssignmentHistory)
	return out
}

func cloneRequest(r models.TicketRequest) models.TicketRequest {
	out := r
	if r.RequestedQuantities != nil {
		out.RequestedQuantities = append(out.RequestedQuantities[:0:0], r.RequestedQuantities...)
	}
	return out
}

func inWorkspace(workspaceID, owner string) bool {
	return workspaceID == "" || owner == workspaceID
}

func cloneWorkspace(w models.Workspace) models.Workspace {
	out := w
	out.Teams = make([]models.Team, len(w.Teams))
	for i, t := range w.Teams {
		tc := t
		tc.SeatTypes = append([]models.SeatType(nil), t.SeatTypes...)
		out.Teams[i] = tc
	}
	out.TicketValues = append([]models.TicketValue(nil), w.TicketValues...)
	return out
}

type memEvents struct {
	m *Memory
}

func (s *memEvents) List(ctx context.Context, workspaceID string) ([]models.Event, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var out []models.Event
	for _, e := range s.m.events {
		if workspaceID == "" || e.WorkspaceID == workspaceID {
			out = append(out, cloneEvent(e))
		}
	}
	return out, nil
}

func (s *memEvents) Get(ctx context.Context, workspaceID, id string) (*models.Event, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, e := range s.m.events {
		if e.ID == id && inWorkspace(workspaceID, e.WorkspaceID) {
			c := cloneEvent(e)
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memEvents) Create(ctx context.Context, event *models.Event) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.events = append(s.m.events, cloneEvent(*event))
	return nil
}

func (s *memEvents) Save(ctx context.Context, event *models.Event) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, e := range s.m.events {
		if e.ID == event.ID {
			s.m.events[i] = cloneEvent(*event)
			return nil
		}
	}
	s.m.events = append(s.m.events, cloneEvent(*event))
	return nil
}

func (s *memEvents) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, e := range s.m.events {
		if e.ID == id && inWorkspace(workspaceID, e.WorkspaceID) {
			s.m.events = append(s.m.events[:i], s.m.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memPeople struct {
	m *Memory
}

func (s *memPeople) List(ctx context.Context, workspaceID string) ([]models.Person, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var out []models.Person
	for _, p := range s.m.people {
		if workspaceID == "" || p.WorkspaceID == workspaceID {
			out = append(out, clonePerson(p))
		}
	}
	return out, nil
}

func (s *memPeople) Get(ctx context.Context, workspaceID, id string) (*models.Person, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, p := range s.m.people {
		if p.ID == id && inWorkspace(workspaceID, p.WorkspaceID) {
			c := clonePerson(p)
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memPeople) FindByNameCompany(ctx context.Context, workspaceID, name, company string) (*models.Person, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, p := range s.m.people {
		if workspaceID != "" && p.WorkspaceID != workspaceID {
			continue
		}
		if strings.EqualFold(p.Name, name) && strings.EqualFold(p.Company, company) {
			c := clonePerson(p)
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memPeople) Create(ctx context.Context, person *models.Person) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.people = append(s.m.people, clonePerson(*person))
	return nil
}

func (s *memPeople) Save(ctx context.Context, person *models.Person) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, p := range s.m.people {
		if p.ID == person.ID {
			s.m.people[i] = clonePerson(*person)
			return nil
		}
	}
	s.m.people = append(s.m.people, clonePerson(*person))
	return nil
}

func (s *memPeople) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, p := range s.m.people {
		if p.ID == id && inWorkspace(workspaceID, p.WorkspaceID) {
			s.m.people = append(s.m.people[:i], s.m.people[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memRequests struct {
	m *Memory
}

func (s *memRequests) List(ctx context.Context, workspaceID string) ([]models.TicketRequest, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var out []models.TicketRequest
	for _, r := range s.m.requests {
		if workspaceID == "" || r.WorkspaceID == workspaceID {
			out = append(out, cloneRequest(r))
		}
	}
	return out, nil
}

func (s *memRequests) Get(ctx context.Context, workspaceID, id string) (*models.TicketRequest, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, r := range s.m.requests {
		if r.ID == id && inWorkspace(workspaceID, r.WorkspaceID) {
			c := cloneRequest(r)
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memRequests) Create(ctx context.Context, request *models.TicketRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.requests = append(s.m.requests, cloneRequest(*request))
	return nil
}

func (s *memRequests) Save(ctx context.Context, request *models.TicketRequest) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, r := range s.m.requests {
		if r.ID == request.ID {
			s.m.requests[i] = cloneRequest(*request)
			return nil
		}
	}
	s.m.requests = append(s.m.requests, cloneRequest(*request))
	return nil
}

func (s *memRequests) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, r := range s.m.requests {
		if r.ID == id && inWorkspace(workspaceID, r.WorkspaceID) {
			s.m.requests = append(s.m.requests[:i], s.m.requests[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memWorkspaces struct {
	m *Memory
}

func (s *memWorkspaces) List(ctx context.Context) ([]models.Workspace, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	var out []models.Workspace
	for _, w := range s.m.workspaces {
		out = append(out, cloneWorkspace(w))
	}
	return out, nil
}

func (s *memWorkspaces) Get(ctx context.Context, id string) (*models.Workspace, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, w := range s.m.workspaces {
		if w.ID == id {
			c := cloneWorkspace(w)
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memWorkspaces) FindByKey(ctx context.Context, key string) (*models.Workspace, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for _, w := range s.m.workspaces {
		if w.Key == key {
			c := cloneWorkspace(w)
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memWorkspaces) Create(ctx context.Context, workspace *models.Workspace) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.workspaces = append(s.m.workspaces, cloneWorkspace(*workspace))
	return nil
}

func (s *memWorkspaces) Save(ctx context.Context, workspace *models.Workspace) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i, w := range s.m.workspaces {
		if w.ID == workspace.ID {
			s.m.workspaces[i] = cloneWorkspace(*workspace)
			return nil
		}
	}
	s.m.workspaces = append(s.m.workspaces, cloneWorkspace(*workspace))
	return nil
}

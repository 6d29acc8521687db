package store

import (
	"context"
	"errors"
	"log"

	"ftm/src/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm is the relational implementation backed by Postgres.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Events() EventStore         { return &gormEvents{db: g.db} }
func (g *Gorm) People() PersonStore        { return &gormPeople{db: g.db} }
func (g *Gorm) Requests() RequestStore     { return &gormRequests{db: g.db} }
func (g *Gorm) Workspaces() WorkspaceStore { return &gormWorkspaces{db: g.db} }

type gormEvents struct {
	db *gorm.DB
}

func (s *gormEvents) List(ctx context.Context, workspaceID string) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where(&models.Event{WorkspaceID: workspaceID}).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tickets.created_at asc")
		}).
		Order("date asc, time asc").
		Find(&events).
		Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *gormEvents) Get(ctx context.Context, workspaceID, id string) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).
		Where(&models.Event{ID: id, WorkspaceID: workspaceID}).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("tickets.created_at asc")
		}).
		First(&event).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (s *gormEvents) Create(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

// Save writes the whole aggregate back: ticket rows no longer present on the
// event are removed, everything else is upserted.
func (s *gormEvents) Save(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]string, 0, len(event.Tickets))
		for _, t := range event.Tickets {
			keep = append(keep, t.ID)
		}
		q := tx.Where("event_id = ?", event.ID)
		if len(keep) > 0 {
			q = q.Where("id NOT IN ?", keep)
		}
		if err := q.Delete(&models.Ticket{}).Error; err != nil {
			return err
		}
		return tx.
			Session(&gorm.Session{FullSaveAssociations: true}).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Save(event).
			Error
	})
}

func (s *gormEvents) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	q := s.db.WithContext(ctx).Where("id = ?", id)
	if workspaceID != "" {
		q = q.Where("workspace_id = ?", workspaceID)
	}
	res := q.Delete(&models.Event{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected < 1 {
		return false, nil
	}
	// Cascade is declared on the FK; clean up explicitly as well in case the
	// schema was migrated without constraints.
	if err := s.db.WithContext(ctx).Where("event_id = ?", id).Delete(&models.Ticket{}).Error; err != nil {
		log.Printf("Error deleting tickets for event %s: %s\n", id, err.Error())
	}
	return true, nil
}

type gormPeople struct {
	db *gorm.DB
}

func (s *gormPeople) List(ctx context.Context, workspaceID string) ([]models.Person, error) {
	var people []models.Person
	err := s.db.WithContext(ctx).
		Where(&models.Person{WorkspaceID: workspaceID}).
		Preload("AssignmentHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("assignment_histories.created_at asc")
		}).
		Order("name asc").
		Find(&people).
		Error
	if err != nil {
		return nil, err
	}
	return people, nil
}

func (s *gormPeople) Get(ctx context.Context, workspaceID, id string) (*models.Person, error) {
	var person models.Person
	err := s.db.WithContext(ctx).
		Where(&models.Person{ID: id, WorkspaceID: workspaceID}).
		Preload("AssignmentHistory").
		First(&person).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (s *gormPeople) FindByNameCompany(ctx context.Context, workspaceID, name, company string) (*models.Person, error) {
	var person models.Person
	err := s.db.WithContext(ctx).
		Where("workspace_id = ? AND LOWER(name) = LOWER(?) AND LOWER(company) = LOWER(?)", workspaceID, name, company).
		Preload("AssignmentHistory").
		First(&person).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (s *gormPeople) Create(ctx context.Context, person *models.Person) error {
	return s.db.WithContext(ctx).Create(person).Error
}

func (s *gormPeople) Save(ctx context.Context, person *models.Person) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Save(person).
		Error
}

func (s *gormPeople) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	q := s.db.WithContext(ctx).Where("id = ?", id)
	if workspaceID != "" {
		q = q.Where("workspace_id = ?", workspaceID)
	}
	res := q.Delete(&models.Person{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected < 1 {
		return false, nil
	}
	if err := s.db.WithContext(ctx).Where("person_id = ?", id).Delete(&models.AssignmentHistory{}).Error; err != nil {
		log.Printf("Error deleting history for person %s: %s\n", id, err.Error())
	}
	return true, nil
}

type gormRequests struct {
	db *gorm.DB
}

func (s *gormRequests) List(ctx context.Context, workspaceID string) ([]models.TicketRequest, error) {
	var requests []models.TicketRequest
	err := s.db.WithContext(ctx).
		Where(&models.TicketRequest{WorkspaceID: workspaceID}).
		Order("requested_at desc").
		Find(&requests).
		Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *gormRequests) Get(ctx context.Context, workspaceID, id string) (*models.TicketRequest, error) {
	var request models.TicketRequest
	err := s.db.WithContext(ctx).
		Where(&models.TicketRequest{ID: id, WorkspaceID: workspaceID}).
		First(&request).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (s *gormRequests) Create(ctx context.Context, request *models.TicketRequest) error {
	return s.db.WithContext(ctx).Create(request).Error
}

func (s *gormRequests) Save(ctx context.Context, request *models.TicketRequest) error {
	return s.db.WithContext(ctx).Save(request).Error
}

func (s *gormRequests) Delete(ctx context.Context, workspaceID, id string) (bool, error) {
	q := s.db.WithContext(ctx).Where("id = ?", id)
	if workspaceID != "" {
		q = q.Where("workspace_id = ?", workspaceID)
	}
	res := q.Delete(&models.TicketRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type gormWorkspaces struct {
	db *gorm.DB
}

func (s *gormWorkspaces) preload() *gorm.DB {
	return s.db.
		Preload("Teams").
		Preload("Teams.SeatTypes").
		Preload("TicketValues")
}

func (s *gormWorkspaces) List(ctx context.Context) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := s.preload().WithContext(ctx).Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (s *gormWorkspaces) Get(ctx context.Context, id string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := s.preload().WithContext(ctx).
		Where(&models.Workspace{ID: id}).
		First(&workspace).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workspace, nil
}

func (s *gormWorkspaces) FindByKey(ctx context.Context, key string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := s.preload().WithContext(ctx).
		Where(&models.Workspace{Key: key}).
		First(&workspace).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &workspace, nil
}

func (s *gormWorkspaces) Create(ctx context.Context, workspace *models.Workspace) error {
	return s.db.WithContext(ctx).Create(workspace).Error
}

func (s *gormWorkspaces) Save(ctx context.Context, workspace *models.Workspace) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Save(workspace).
		Error
}

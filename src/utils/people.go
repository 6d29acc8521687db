package utils

import (
	"context"
	"log"
	"strings"

	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/types"

	"github.com/google/uuid"
)

// AddOrUpdatePerson upserts a person keyed by (name, company),
// case-insensitively. Mutable fields are last-write-wins; the history is
// never touched here.
func AddOrUpdatePerson(ctx context.Context, workspaceId string, params *types.PersonRequestBody) (*models.Person, error) {
	people := store.Current().People()
	existing, err := people.FindByNameCompany(ctx, workspaceId, params.Name, params.Company)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Name = params.Name
		existing.Company = params.Company
		if params.Email != "" {
			existing.Email = params.Email
		}
		if params.Phone != "" {
			existing.Phone = params.Phone
		}
		if err := people.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	person := models.Person{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceId,
		Name:        params.Name,
		Company:     params.Company,
		Email:       params.Email,
		Phone:       params.Phone,
	}
	if err := people.Create(ctx, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

// AddAssignmentHistory appends a snapshot to a known person's history. An
// unknown (name, company) pair is a deliberate no-op: history is only
// recorded for people already in the directory.
func AddAssignmentHistory(ctx context.Context, workspaceId, name, company string, entry models.AssignmentHistory) error {
	people := store.Current().People()
	person, err := people.FindByNameCompany(ctx, workspaceId, name, company)
	if err != nil {
		return err
	}
	if person == nil {
		return nil
	}
	entry.ID = uuid.NewString()
	entry.PersonID = person.ID
	person.AssignmentHistory = append(person.AssignmentHistory, entry)
	return people.Save(ctx, person)
}

// SearchPeople matches name or company by case-insensitive substring. Results
// are capped at 10 and each person's history is filtered down to entries
// whose event still exists.
func SearchPeople(ctx context.Context, workspaceId, query string) ([]models.Person, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	term := strings.ToLower(query)

	s := store.Current()
	people, err := s.People().List(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	events, err := s.Events().List(ctx, workspaceId)
	if err != nil {
		log.Printf("Error reading events for history filtering: %s\n", err.Error())
		events = nil
	}
	liveEvents := make(map[string]bool, len(events))
	for _, e := range events {
		liveEvents[e.ID] = true
	}

	var results []models.Person
	for _, p := range people {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Company), term) {
			continue
		}
		filtered := make([]models.AssignmentHistory, 0, len(p.AssignmentHistory))
		for _, h := range p.AssignmentHistory {
			if liveEvents[h.EventID] {
				filtered = append(filtered, h)
			}
		}
		p.AssignmentHistory = filtered
		results = append(results, p)
		if len(results) == 10 {
			break
		}
	}
	return results, nil
}

func DeletePerson(ctx context.Context, workspaceId, id string) (bool, error) {
	return store.Current().People().Delete(ctx, workspaceId, id)
}

// MergePeople concatenates the merged person's history onto the kept record
// and discards the merged record. Unknown ids are a no-op returning false.
func MergePeople(ctx context.Context, workspaceId, keepId, mergeId string) (bool, error) {
	people := store.Current().People()
	keep, err := people.Get(ctx, workspaceId, keepId)
	if err != nil || keep == nil {
		return false, err
	}
	merge, err := people.Get(ctx, workspaceId, mergeId)
	if err != nil || merge == nil {
		return false, err
	}
	for _, h := range merge.AssignmentHistory {
		h.PersonID = keep.ID
		keep.AssignmentHistory = append(keep.AssignmentHistory, h)
	}
	if err := people.Save(ctx, keep); err != nil {
		return false, err
	}
	return people.Delete(ctx, workspaceId, mergeId)
}

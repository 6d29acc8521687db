package utils

import (
	"context"
	"fmt"
	"iter"
	"log"
	"strconv"
	"strings"
	"time"

	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/types"

	"github.com/google/uuid"
)

// CreateNewEvent creates an event and seeds one ticket per seat type
// configured for the event's team and the current season. When the workspace
// has no configured values for that pair, the caller-supplied seat types are
// used instead. Missing required fields make this a silent no-op: validation
// belongs to the HTTP boundary.
func CreateNewEvent(ctx context.Context, params *types.CreateEventRequestBody, ws *models.Workspace, now time.Time) (*models.Event, error) {
	if params == nil || params.TeamID == "" || params.Opponent == "" || params.Date == "" || params.Time == "" {
		return nil, nil
	}

	eventId := uuid.NewString()
	season := CurrentSeason(now)

	var configured []models.TicketValue
	workspaceId := ""
	if ws != nil {
		workspaceId = ws.ID
		for _, tv := range ws.TicketValues {
			if tv.TeamID == params.TeamID && tv.Season == season {
				configured = append(configured, tv)
			}
		}
	}

	var tickets []models.Ticket
	if len(configured) > 0 {
		for i, sc := range configured {
			seatTypeName := sc.SeatType
			if seatTypeName == "" {
				seatTypeName = fmt.Sprintf("Seat %d", i+1)
			}
			tickets = append(tickets, models.Ticket{
				ID:             uuid.NewString(),
				EventID:        eventId,
				SeatType:       seatTypeName,
				Section:        seatTypeName,
				Row:            "1",
				Seat:           strconv.Itoa(i + 1),
				Value:          sc.Value,
				Source:         sc.Source,
				AssignmentType: types.ASSIGN_NONE,
				Price:          0,
				Confirmed:      false,
			})
		}
	} else {
		for i, st := range params.SeatTypes {
			tickets = append(tickets, models.Ticket{
				ID:             uuid.NewString(),
				EventID:        eventId,
				SeatType:       st.Name,
				Section:        st.Name,
				Row:            "1",
				Seat:           strconv.Itoa(i + 1),
				Value:          st.Value,
				Source:         st.Source,
				AssignmentType: types.ASSIGN_NONE,
				Price:          0,
				Confirmed:      false,
			})
		}
	}

	event := models.Event{
		ID:          eventId,
		WorkspaceID: workspaceId,
		TeamID:      params.TeamID,
		Opponent:    params.Opponent,
		Date:        params.Date,
		Time:        params.Time,
		IsPlayoff:   params.IsPlayoff,
		Tickets:     tickets,
	}
	if err := store.Current().Events().Create(ctx, &event); err != nil {
		log.Printf("Error creating event: %s\n", err.Error())
		return nil, err
	}
	return &event, nil
}

// UpdateEventFields merges the provided fields into the event. Tickets are
// never touched here.
func UpdateEventFields(ctx context.Context, workspaceId, id string, params *types.UpdateEventRequestBody) (*models.Event, error) {
	events := store.Current().Events()
	event, err := events.Get(ctx, workspaceId, id)
	if err != nil || event == nil {
		return nil, err
	}
	if params.TeamID != nil {
		event.TeamID = *params.TeamID
	}
	if params.Opponent != nil {
		event.Opponent = *params.Opponent
	}
	if params.Date != nil {
		event.Date = *params.Date
	}
	if params.Time != nil {
		event.Time = *params.Time
	}
	if params.IsPlayoff != nil {
		event.IsPlayoff = *params.IsPlayoff
	}
	if err := events.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func DeleteEvent(ctx context.Context, workspaceId, id string) (bool, error) {
	return store.Current().Events().Delete(ctx, workspaceId, id)
}

// ApplyAssignment merges a partial assignment into the ticket and enforces
// the pricing invariant: a sold ticket carries the explicit incoming price or
// its intrinsic value, anything else carries 0. Moving a ticket to a
// non-sold category also drops its confirmation.
func ApplyAssignment(t *models.Ticket, patch *types.AssignmentPatch) {
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	if patch.AssignedCompany != nil {
		t.AssignedCompany = *patch.AssignedCompany
	}
	if patch.AssignmentType != nil {
		t.AssignmentType = *patch.AssignmentType
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Confirmed != nil {
		t.Confirmed = *patch.Confirmed
	}
	if patch.Parking != nil {
		t.Parking = patch.Parking
	}

	if t.AssignmentType == types.ASSIGN_SOLD {
		if patch.Price != nil {
			t.Price = *patch.Price
		} else {
			t.Price = t.Value
		}
	} else {
		t.Price = 0
		if patch.AssignmentType != nil {
			t.Confirmed = false
		}
	}
}

// UpdateTicketAssignment is the single mutation path for assignment state.
// The bool return reports whether this patch is the one that confirmed the
// ticket; later edits of an already-confirmed ticket report false.
func UpdateTicketAssignment(ctx context.Context, workspaceId, eventId, ticketId string, patch *types.AssignmentPatch) (*models.Ticket, bool, error) {
	events := store.Current().Events()
	event, err := events.Get(ctx, workspaceId, eventId)
	if err != nil || event == nil {
		return nil, false, err
	}
	for i := range event.Tickets {
		if event.Tickets[i].ID != ticketId {
			continue
		}
		wasConfirmed := event.Tickets[i].Confirmed
		ApplyAssignment(&event.Tickets[i], patch)
		if err := events.Save(ctx, event); err != nil {
			return nil, false, err
		}
		updated := event.Tickets[i]
		return &updated, !wasConfirmed && updated.Confirmed, nil
	}
	return nil, false, nil
}

// AddCustomTicket appends an ad-hoc seat to the event.
func AddCustomTicket(ctx context.Context, workspaceId, eventId, section, row, seat string, value float64) (*models.Ticket, error) {
	events := store.Current().Events()
	event, err := events.Get(ctx, workspaceId, eventId)
	if err != nil || event == nil {
		return nil, err
	}
	ticket := models.Ticket{
		ID:             uuid.NewString(),
		EventID:        eventId,
		SeatType:       fmt.Sprintf("%s-%s-%s", section, row, seat),
		CustomName:     fmt.Sprintf("Section %s, Row %s, Seat %s", section, row, seat),
		Section:        section,
		Row:            row,
		Seat:           seat,
		Value:          value,
		Source:         "custom",
		AssignmentType: types.ASSIGN_NONE,
		Price:          0,
		Confirmed:      false,
	}
	event.Tickets = append(event.Tickets, ticket)
	if err := events.Save(ctx, event); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func DeleteTicket(ctx context.Context, workspaceId, eventId, ticketId string) (bool, error) {
	events := store.Current().Events()
	event, err := events.Get(ctx, workspaceId, eventId)
	if err != nil || event == nil {
		return false, err
	}
	for i := range event.Tickets {
		if event.Tickets[i].ID != ticketId {
			continue
		}
		event.Tickets = append(event.Tickets[:i], event.Tickets[i+1:]...)
		if err := events.Save(ctx, event); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func matchesSearch(event models.Event, term string) bool {
	if strings.Contains(strings.ToLower(event.Opponent), term) {
		return true
	}
	for _, t := range event.Tickets {
		if strings.Contains(strings.ToLower(t.AssignedTo), term) ||
			strings.Contains(strings.ToLower(t.AssignedCompany), term) {
			return true
		}
	}
	return false
}

// FilterEvents returns a restartable lazy sequence of events matching the
// filters. Ordering is whatever the input carries; callers sort themselves.
func FilterEvents(events []models.Event, filters types.EventFilters, now time.Time) iter.Seq[models.Event] {
	term := strings.ToLower(filters.Search)
	return func(yield func(models.Event) bool) {
		for _, event := range events {
			if !filters.ShowPastEvents && IsPastEvent(event, now) {
				continue
			}
			if filters.TeamID != "" && event.TeamID != filters.TeamID {
				continue
			}
			if term != "" && !matchesSearch(event, term) {
				continue
			}
			if !yield(event) {
				return
			}
		}
	}
}

// GetEventStats derives counts for one event. An event with a missing or
// invalid ticket collection yields all-zero stats rather than failing.
func GetEventStats(event *models.Event) models.EventStats {
	if event == nil || event.Tickets == nil {
		return models.EventStats{}
	}

	totalTickets := len(event.Tickets)
	assignedTickets := 0
	soldTickets := 0
	confirmedRevenue := 0.0
	for _, t := range event.Tickets {
		if !t.Assigned() {
			continue
		}
		assignedTickets++
		if t.AssignmentType == types.ASSIGN_SOLD {
			soldTickets++
			if t.Status == types.TICKET_CONFIRMED {
				confirmedRevenue += t.Price
			}
		}
	}
	availableTickets := totalTickets - assignedTickets

	return models.EventStats{
		TotalTickets:     totalTickets,
		AssignedTickets:  assignedTickets,
		AvailableTickets: availableTickets,
		SoldTickets:      soldTickets,
		ConfirmedRevenue: confirmedRevenue,
		IsSoldOut:        availableTickets == 0,
	}
}

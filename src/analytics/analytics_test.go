package analytics

import (
	"testing"
	"time"

	"ftm/src/models"
	"ftm/src/types"

	"github.com/stretchr/testify/assert"
)

func soldTicket(name string, price float64, confirmed bool) models.Ticket {
	status := types.TICKET_TENTATIVE
	if confirmed {
		status = types.TICKET_CONFIRMED
	}
	return models.Ticket{
		AssignedTo:     name,
		AssignmentType: types.ASSIGN_SOLD,
		Status:         status,
		Price:          price,
	}
}

func TestGenerateRevenueReport(t *testing.T) {
	events := []models.Event{
		{
			ID: "e-1", TeamID: "nuggets", Date: "2025-11-02",
			Tickets: []models.Ticket{
				soldTicket("A", 350, true),
				soldTicket("B", 350, false),
				{AssignedTo: "C", AssignmentType: types.ASSIGN_TEAM},
				{},
			},
		},
		{
			ID: "e-2", TeamID: "broncos", Date: "2025-12-07",
			Tickets: []models.Ticket{
				soldTicket("D", 300, true),
			},
		},
	}

	report := GenerateRevenueReport(events, "", "", nil, map[string]string{
		"nuggets": "Denver Nuggets",
		"broncos": "Denver Broncos",
	})

	assert.Equal(t, float64(1000), report.TotalRevenue)
	assert.Equal(t, float64(650), report.ConfirmedRevenue)
	assert.Equal(t, float64(350), report.PendingRevenue)
	assert.Equal(t, 3, report.TotalTicketsSold)
	assert.Equal(t, 2, report.TotalTicketsConfirmed)
	assert.InDelta(t, 333.33, report.AverageTicketPrice, 0.01)

	// Monthly buckets hold confirmed revenue only, sorted by month.
	assert.Len(t, report.RevenueByMonth, 2)
	assert.Equal(t, "2025-11", report.RevenueByMonth[0].Month)
	assert.Equal(t, float64(350), report.RevenueByMonth[0].Revenue)
	assert.Equal(t, "2025-12", report.RevenueByMonth[1].Month)
	assert.Equal(t, float64(300), report.RevenueByMonth[1].Revenue)

	assert.Len(t, report.RevenueByTeam, 2)
	for _, team := range report.RevenueByTeam {
		if team.TeamID == "nuggets" {
			assert.Equal(t, "Denver Nuggets", team.TeamName)
			assert.Equal(t, float64(350), team.Revenue)
			assert.Equal(t, 1, team.Tickets)
		}
	}
}

func TestGenerateRevenueReportFilters(t *testing.T) {
	events := []models.Event{
		{ID: "e-1", TeamID: "nuggets", Date: "2025-11-02", Tickets: []models.Ticket{soldTicket("A", 350, true)}},
		{ID: "e-2", TeamID: "broncos", Date: "2025-12-07", Tickets: []models.Ticket{soldTicket("B", 300, true)}},
	}

	report := GenerateRevenueReport(events, "2025-12-01", "", nil, nil)
	assert.Equal(t, float64(300), report.TotalRevenue)

	report = GenerateRevenueReport(events, "", "", []string{"nuggets"}, nil)
	assert.Equal(t, float64(350), report.TotalRevenue)

	report = GenerateRevenueReport(nil, "", "", nil, nil)
	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AverageTicketPrice)
	assert.Empty(t, report.RevenueByMonth)
}

func TestGenerateAssignmentBreakdown(t *testing.T) {
	tickets := make([]models.Ticket, 0, 10)
	for i := 0; i < 3; i++ {
		tickets = append(tickets, soldTicket("S", 100, true))
	}
	for i := 0; i < 2; i++ {
		tickets = append(tickets, models.Ticket{AssignedTo: "T", AssignmentType: types.ASSIGN_TEAM})
	}
	for i := 0; i < 5; i++ {
		tickets = append(tickets, models.Ticket{})
	}
	events := []models.Event{{ID: "e-1", Date: "2025-11-02", Tickets: tickets}}

	breakdown := GenerateAssignmentBreakdown(events, "", "")
	assert.Equal(t, 3, breakdown.Sold.Count)
	assert.Equal(t, float64(30), breakdown.Sold.Percentage)
	assert.Equal(t, float64(300), breakdown.Sold.Revenue)
	assert.Equal(t, 2, breakdown.Team.Count)
	assert.Equal(t, float64(20), breakdown.Team.Percentage)
	assert.Equal(t, 5, breakdown.Unassigned.Count)
	assert.Equal(t, float64(50), breakdown.Unassigned.Percentage)
	assert.Zero(t, breakdown.Donated.Count)
}

func TestGenerateAssignmentBreakdownEmpty(t *testing.T) {
	breakdown := GenerateAssignmentBreakdown(nil, "", "")
	assert.Zero(t, breakdown.Sold.Count)
	assert.Zero(t, breakdown.Sold.Percentage)
	assert.Zero(t, breakdown.Unassigned.Percentage)
}

func historyEntry(eventId, date string, price float64, confirmed bool) models.AssignmentHistory {
	return models.AssignmentHistory{
		EventID:        eventId,
		Date:           date,
		AssignmentType: types.ASSIGN_SOLD,
		Price:          price,
		Confirmed:      confirmed,
	}
}

func TestTopTicketHolders(t *testing.T) {
	events := []models.Event{{ID: "e-1"}, {ID: "e-2"}}
	people := []models.Person{
		{
			Name: "Heavy", Company: "Acme",
			AssignmentHistory: []models.AssignmentHistory{
				historyEntry("e-1", "2025-11-02", 350, true),
				historyEntry("e-2", "2025-12-07", 350, true),
				historyEntry("e-deleted", "2025-10-01", 350, true),
			},
		},
		{
			Name: "Light", Company: "Globex",
			AssignmentHistory: []models.AssignmentHistory{
				historyEntry("e-1", "2025-11-02", 100, false),
			},
		},
		{
			Name: "OnlyDeleted", Company: "Initech",
			AssignmentHistory: []models.AssignmentHistory{
				historyEntry("e-gone", "2025-09-01", 100, true),
			},
		},
	}

	holders := TopTicketHolders(people, events, 10)
	assert.Len(t, holders, 2)
	assert.Equal(t, "Heavy", holders[0].Name)
	assert.Equal(t, 2, holders[0].TotalAssignments)
	assert.Equal(t, float64(700), holders[0].ConfirmedRevenue)
	assert.Equal(t, "2025-12-07", holders[0].LastEventDate)
	// Unconfirmed sales count as assignments but not revenue.
	assert.Equal(t, "Light", holders[1].Name)
	assert.Zero(t, holders[1].ConfirmedRevenue)

	holders = TopTicketHolders(people, events, 1)
	assert.Len(t, holders, 1)
}

func TestCompanyBreakdown(t *testing.T) {
	events := []models.Event{{ID: "e-1"}}
	people := []models.Person{
		{Name: "A", Company: "Acme", AssignmentHistory: []models.AssignmentHistory{historyEntry("e-1", "2025-11-02", 350, true)}},
		{Name: "B", Company: "Acme", AssignmentHistory: []models.AssignmentHistory{historyEntry("e-1", "2025-11-02", 150, true)}},
		{Name: "C", Company: "Globex", AssignmentHistory: []models.AssignmentHistory{historyEntry("e-1", "2025-11-02", 100, true)}},
	}

	companies := CompanyBreakdown(people, events)
	assert.Len(t, companies, 2)
	assert.Equal(t, "Acme", companies[0].Company)
	assert.Equal(t, 2, companies[0].UniqueAttendees)
	assert.Equal(t, float64(500), companies[0].ConfirmedRevenue)
	assert.Equal(t, float64(250), companies[0].AverageSpendPerPerson)
	assert.Equal(t, "Globex", companies[1].Company)
}

func TestGetEventStatistics(t *testing.T) {
	now := time.Date(2025, time.November, 15, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: "e-1", Date: "2025-11-02", IsPlayoff: true, Tickets: []models.Ticket{
			{AssignedTo: "A"}, {AssignedTo: "B"},
		}},
		{ID: "e-2", Date: "2025-12-07", Tickets: []models.Ticket{
			{AssignedTo: "A"}, {},
		}},
		{ID: "e-3", Date: "2026-01-10"},
	}

	stats := GetEventStatistics(events, now)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, 1, stats.PastEvents)
	assert.Equal(t, 2, stats.UpcomingEvents)
	assert.Equal(t, 1, stats.PlayoffEvents)
	assert.Equal(t, 4, stats.TotalTickets)
	assert.Equal(t, 3, stats.AssignedTickets)
	assert.Equal(t, 1, stats.AvailableTickets)
	// Fully assigned counts as sold out regardless of assignment type.
	assert.Equal(t, 1, stats.SoldOutEvents)
}

func TestGetRequestStatistics(t *testing.T) {
	events := []models.Event{{ID: "e-1"}}
	requests := []models.TicketRequest{
		{EventID: "e-1", Status: types.REQUEST_PENDING, Priority: types.PRIORITY_WANT},
		{EventID: "e-1", Status: types.REQUEST_APPROVED, Priority: types.PRIORITY_NEED},
		{EventID: "e-1", Status: types.REQUEST_APPROVED, Priority: types.PRIORITY_WANT},
		{EventID: "e-1", Status: types.REQUEST_DENIED, Priority: types.PRIORITY_NICE},
		{EventID: "e-deleted", Status: types.REQUEST_APPROVED, Priority: types.PRIORITY_WANT},
	}

	stats := GetRequestStatistics(requests, events)
	assert.Equal(t, 4, stats.TotalRequests)
	assert.Equal(t, 1, stats.PendingRequests)
	assert.Equal(t, 2, stats.ApprovedRequests)
	assert.Equal(t, 1, stats.DeniedRequests)
	// 2 approved of 3 processed.
	assert.InDelta(t, 66.67, stats.ApprovalRate, 0.01)
	assert.Equal(t, 2, stats.ByPriority["want"])
	assert.Equal(t, 1, stats.ByPriority["need"])
	assert.Equal(t, 1, stats.ByPriority["nice-to-have"])
}

func TestGetRequestStatisticsEmpty(t *testing.T) {
	stats := GetRequestStatistics(nil, nil)
	assert.Zero(t, stats.TotalRequests)
	assert.Zero(t, stats.ApprovalRate)
}

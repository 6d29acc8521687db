// Package analytics computes read-only projections over the event inventory
// and the person directory. Nothing here mutates state, and malformed input
// events contribute zero instead of failing.
package analytics

import (
	"sort"
	"time"

	"ftm/src/config"
	"ftm/src/models"
	"ftm/src/types"
)

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Tickets int     `json:"tickets"`
}

type TeamRevenue struct {
	TeamID   string  `json:"teamId"`
	TeamName string  `json:"teamName"`
	Revenue  float64 `json:"revenue"`
	Tickets  int     `json:"tickets"`
}

type RevenueReport struct {
	TotalRevenue          float64        `json:"totalRevenue"`
	ConfirmedRevenue      float64        `json:"confirmedRevenue"`
	PendingRevenue        float64        `json:"pendingRevenue"`
	TotalTicketsSold      int            `json:"totalTicketsSold"`
	TotalTicketsConfirmed int            `json:"totalTicketsConfirmed"`
	AverageTicketPrice    float64        `json:"averageTicketPrice"`
	RevenueByMonth        []MonthRevenue `json:"revenueByMonth"`
	RevenueByTeam         []TeamRevenue  `json:"revenueByTeam"`
}

type BreakdownSlice struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Revenue    float64 `json:"revenue,omitempty"`
}

type AssignmentBreakdown struct {
	Sold       BreakdownSlice `json:"sold"`
	Team       BreakdownSlice `json:"team"`
	Donated    BreakdownSlice `json:"donated"`
	Gifted     BreakdownSlice `json:"gifted"`
	Traded     BreakdownSlice `json:"traded"`
	Unassigned BreakdownSlice `json:"unassigned"`
}

type TopTicketHolder struct {
	Name             string  `json:"name"`
	Company          string  `json:"company"`
	TotalAssignments int     `json:"totalAssignments"`
	ConfirmedRevenue float64 `json:"confirmedRevenue"`
	LastEventDate    string  `json:"lastEventDate"`
}

type CompanyAnalytics struct {
	Company              string  `json:"company"`
	TotalAssignments     int     `json:"totalAssignments"`
	ConfirmedRevenue     float64 `json:"confirmedRevenue"`
	UniqueAttendees      int     `json:"uniqueAttendees"`
	AverageSpendPerPerson float64 `json:"averageSpendPerPerson"`
}

type EventStatistics struct {
	TotalEvents      int `json:"totalEvents"`
	UpcomingEvents   int `json:"upcomingEvents"`
	PastEvents       int `json:"pastEvents"`
	PlayoffEvents    int `json:"playoffEvents"`
	TotalTickets     int `json:"totalTickets"`
	AssignedTickets  int `json:"assignedTickets"`
	AvailableTickets int `json:"availableTickets"`
	SoldOutEvents    int `json:"soldOutEvents"`
}

type RequestStatistics struct {
	TotalRequests    int            `json:"totalRequests"`
	PendingRequests  int            `json:"pendingRequests"`
	ApprovedRequests int            `json:"approvedRequests"`
	DeniedRequests   int            `json:"deniedRequests"`
	ApprovalRate     float64        `json:"approvalRate"`
	ByPriority       map[string]int `json:"requestsByPriority"`
}

func inDateRange(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}

// GenerateRevenueReport sums sold-ticket revenue over the filtered events,
// splitting confirmed from pending. The monthly and per-team buckets only
// accumulate confirmed revenue even though the headline totals include
// pending amounts.
func GenerateRevenueReport(events []models.Event, startDate, endDate string, teamIds []string, teamNames map[string]string) RevenueReport {
	wantTeam := make(map[string]bool, len(teamIds))
	for _, id := range teamIds {
		wantTeam[id] = true
	}

	report := RevenueReport{}
	byMonth := map[string]*MonthRevenue{}
	byTeam := map[string]*TeamRevenue{}

	for _, event := range events {
		if event.Tickets == nil {
			continue
		}
		if !inDateRange(event.Date, startDate, endDate) {
			continue
		}
		if len(teamIds) > 0 && !wantTeam[event.TeamID] {
			continue
		}

		monthKey := event.Date
		if len(monthKey) >= 7 {
			monthKey = monthKey[:7]
		}

		for _, ticket := range event.Tickets {
			if ticket.AssignmentType != types.ASSIGN_SOLD || !ticket.Assigned() {
				continue
			}
			report.TotalTicketsSold++
			report.TotalRevenue += ticket.Price

			confirmed := ticket.Status == types.TICKET_CONFIRMED
			if confirmed {
				report.TotalTicketsConfirmed++
				report.ConfirmedRevenue += ticket.Price
			} else {
				report.PendingRevenue += ticket.Price
			}

			if byMonth[monthKey] == nil {
				byMonth[monthKey] = &MonthRevenue{Month: monthKey}
			}
			teamId := event.TeamID
			if teamId == "" {
				teamId = "unknown"
			}
			if byTeam[teamId] == nil {
				name := teamNames[teamId]
				if name == "" {
					name = teamId
				}
				byTeam[teamId] = &TeamRevenue{TeamID: teamId, TeamName: name}
			}
			if confirmed {
				byMonth[monthKey].Revenue += ticket.Price
				byMonth[monthKey].Tickets++
				byTeam[teamId].Revenue += ticket.Price
				byTeam[teamId].Tickets++
			}
		}
	}

	if report.TotalTicketsSold > 0 {
		report.AverageTicketPrice = report.TotalRevenue / float64(report.TotalTicketsSold)
	}

	report.RevenueByMonth = make([]MonthRevenue, 0, len(byMonth))
	for _, m := range byMonth {
		report.RevenueByMonth = append(report.RevenueByMonth, *m)
	}
	sort.Slice(report.RevenueByMonth, func(i, j int) bool {
		return report.RevenueByMonth[i].Month < report.RevenueByMonth[j].Month
	})

	report.RevenueByTeam = make([]TeamRevenue, 0, len(byTeam))
	for _, t := range byTeam {
		report.RevenueByTeam = append(report.RevenueByTeam, *t)
	}
	sort.Slice(report.RevenueByTeam, func(i, j int) bool {
		return report.RevenueByTeam[i].TeamID < report.RevenueByTeam[j].TeamID
	})

	return report
}

// GenerateAssignmentBreakdown computes the percentage distribution of
// assignment categories over the date-filtered events. The sold slice also
// carries confirmed revenue.
func GenerateAssignmentBreakdown(events []models.Event, startDate, endDate string) AssignmentBreakdown {
	counts := map[types.AssignmentType]int{}
	unassigned := 0
	totalTickets := 0
	soldRevenue := 0.0

	for _, event := range events {
		if event.Tickets == nil {
			continue
		}
		if !inDateRange(event.Date, startDate, endDate) {
			continue
		}
		for _, ticket := range event.Tickets {
			totalTickets++
			if !ticket.Assigned() {
				unassigned++
				continue
			}
			counts[ticket.AssignmentType]++
			if ticket.AssignmentType == types.ASSIGN_SOLD && ticket.Status == types.TICKET_CONFIRMED {
				soldRevenue += ticket.Price
			}
		}
	}

	pct := func(count int) float64 {
		if totalTickets == 0 {
			return 0
		}
		return float64(count) / float64(totalTickets) * 100
	}

	return AssignmentBreakdown{
		Sold:       BreakdownSlice{Count: counts[types.ASSIGN_SOLD], Percentage: pct(counts[types.ASSIGN_SOLD]), Revenue: soldRevenue},
		Team:       BreakdownSlice{Count: counts[types.ASSIGN_TEAM], Percentage: pct(counts[types.ASSIGN_TEAM])},
		Donated:    BreakdownSlice{Count: counts[types.ASSIGN_DONATED], Percentage: pct(counts[types.ASSIGN_DONATED])},
		Gifted:     BreakdownSlice{Count: counts[types.ASSIGN_GIFTED], Percentage: pct(counts[types.ASSIGN_GIFTED])},
		Traded:     BreakdownSlice{Count: counts[types.ASSIGN_TRADED], Percentage: pct(counts[types.ASSIGN_TRADED])},
		Unassigned: BreakdownSlice{Count: unassigned, Percentage: pct(unassigned)},
	}
}

func liveEventSet(events []models.Event) map[string]bool {
	ids := make(map[string]bool, len(events))
	for _, e := range events {
		ids[e.ID] = true
	}
	return ids
}

// TopTicketHolders ranks people by historical assignment count. History
// entries pointing at deleted events are excluded, and people left with no
// valid assignments are dropped.
func TopTicketHolders(people []models.Person, events []models.Event, limit int) []TopTicketHolder {
	if limit <= 0 {
		limit = 10
	}
	live := liveEventSet(events)

	holders := make([]TopTicketHolder, 0, len(people))
	for _, person := range people {
		holder := TopTicketHolder{Name: person.Name, Company: person.Company}
		for _, h := range person.AssignmentHistory {
			if !live[h.EventID] {
				continue
			}
			holder.TotalAssignments++
			if h.AssignmentType == types.ASSIGN_SOLD && h.Confirmed {
				holder.ConfirmedRevenue += h.Price
			}
			if h.Date > holder.LastEventDate {
				holder.LastEventDate = h.Date
			}
		}
		if holder.TotalAssignments > 0 {
			holders = append(holders, holder)
		}
	}
	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].TotalAssignments > holders[j].TotalAssignments
	})
	if len(holders) > limit {
		holders = holders[:limit]
	}
	return holders
}

// CompanyBreakdown aggregates confirmed revenue and attendee counts per
// company, ranked by confirmed revenue.
func CompanyBreakdown(people []models.Person, events []models.Event) []CompanyAnalytics {
	live := liveEventSet(events)
	byCompany := map[string]*CompanyAnalytics{}

	for _, person := range people {
		valid := make([]models.AssignmentHistory, 0, len(person.AssignmentHistory))
		for _, h := range person.AssignmentHistory {
			if live[h.EventID] {
				valid = append(valid, h)
			}
		}
		if len(valid) == 0 {
			continue
		}
		company := byCompany[person.Company]
		if company == nil {
			company = &CompanyAnalytics{Company: person.Company}
			byCompany[person.Company] = company
		}
		company.UniqueAttendees++
		company.TotalAssignments += len(valid)
		for _, h := range valid {
			if h.AssignmentType == types.ASSIGN_SOLD && h.Confirmed {
				company.ConfirmedRevenue += h.Price
			}
		}
	}

	out := make([]CompanyAnalytics, 0, len(byCompany))
	for _, c := range byCompany {
		if c.UniqueAttendees > 0 {
			c.AverageSpendPerPerson = c.ConfirmedRevenue / float64(c.UniqueAttendees)
		}
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConfirmedRevenue > out[j].ConfirmedRevenue
	})
	return out
}

// GetEventStatistics derives whole-inventory counts. "Upcoming" compares the
// bare event date against now.
func GetEventStatistics(events []models.Event, now time.Time) EventStatistics {
	stats := EventStatistics{TotalEvents: len(events)}
	for _, event := range events {
		if event.IsPlayoff {
			stats.PlayoffEvents++
		}
		if date, err := time.Parse(config.DATE_FORMAT, event.Date); err == nil {
			if date.Before(now.Truncate(24 * time.Hour)) {
				stats.PastEvents++
			} else {
				stats.UpcomingEvents++
			}
		}
		if event.Tickets == nil {
			continue
		}
		assigned := 0
		for _, t := range event.Tickets {
			if t.Assigned() {
				assigned++
			}
		}
		stats.TotalTickets += len(event.Tickets)
		stats.AssignedTickets += assigned
		if assigned == len(event.Tickets) && len(event.Tickets) > 0 {
			stats.SoldOutEvents++
		}
	}
	stats.AvailableTickets = stats.TotalTickets - stats.AssignedTickets
	return stats
}

// GetRequestStatistics counts requests whose event still exists. Approval
// rate is approved over processed (approved plus denied).
func GetRequestStatistics(requests []models.TicketRequest, events []models.Event) RequestStatistics {
	live := liveEventSet(events)
	stats := RequestStatistics{
		ByPriority: map[string]int{
			string(types.PRIORITY_WANT): 0,
			string(types.PRIORITY_NEED): 0,
			string(types.PRIORITY_NICE): 0,
		},
	}
	for _, r := range requests {
		if !live[r.EventID] {
			continue
		}
		stats.TotalRequests++
		switch r.Status {
		case types.REQUEST_PENDING:
			stats.PendingRequests++
		case types.REQUEST_APPROVED:
			stats.ApprovedRequests++
		case types.REQUEST_DENIED:
			stats.DeniedRequests++
		}
		stats.ByPriority[string(r.Priority)]++
	}
	processed := stats.ApprovedRequests + stats.DeniedRequests
	if stats.TotalRequests > 0 && processed > 0 {
		stats.ApprovalRate = float64(stats.ApprovedRequests) / float64(processed) * 100
	}
	return stats
}

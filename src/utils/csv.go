package utils

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"ftm/src/models"
)

// RecordsToCSV serializes flat records to comma-separated text. Embedded
// commas and quotes are escaped by the csv writer.
func RecordsToCSV(headers []string, rows [][]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(headers); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

var eventCSVHeaders = []string{"id", "teamId", "opponent", "date", "time", "isPlayoff", "totalTickets", "assignedTickets", "soldTickets", "confirmedRevenue"}

func EventCSVRows(events []models.Event) ([]string, [][]string) {
	rows := make([][]string, 0, len(events))
	for i := range events {
		stats := GetEventStats(&events[i])
		e := events[i]
		rows = append(rows, []string{
			e.ID,
			e.TeamID,
			e.Opponent,
			e.Date,
			e.Time,
			strconv.FormatBool(e.IsPlayoff),
			strconv.Itoa(stats.TotalTickets),
			strconv.Itoa(stats.AssignedTickets),
			strconv.Itoa(stats.SoldTickets),
			fmt.Sprintf("%.2f", stats.ConfirmedRevenue),
		})
	}
	return eventCSVHeaders, rows
}

var personCSVHeaders = []string{"id", "name", "company", "email", "phone", "totalAssignments"}

func PersonCSVRows(people []models.Person) ([]string, [][]string) {
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Company,
			p.Email,
			p.Phone,
			strconv.Itoa(len(p.AssignmentHistory)),
		})
	}
	return personCSVHeaders, rows
}

var requestCSVHeaders = []string{"id", "eventId", "userName", "userCompany", "priority", "status", "requestedAt", "processedBy"}

func RequestCSVRows(requests []models.TicketRequest) ([]string, [][]string) {
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			r.ID,
			r.EventID,
			r.UserName,
			r.UserCompany,
			string(r.Priority),
			string(r.Status),
			r.RequestedAt.Format("2006-01-02 15:04:05"),
			r.ProcessedBy,
		})
	}
	return requestCSVHeaders, rows
}

package models

import (
	"ftm/src/types"
)

// Workspace is static per-tenant configuration. It seeds new events and is
// not mutated by ticket operations.
type Workspace struct {
	ID               string              `gorm:"primarykey" json:"id"`
	Name             string              `json:"name"`
	OrganizationName string              `json:"organizationName"`
	Slug             string              `gorm:"uniqueIndex" json:"slug"`
	Type             types.WorkspaceType `gorm:"default:'ftm'" json:"type"`

	// Key is the shared tenant key. Cleartext comparison is the accepted
	// contract here; this is not a security boundary.
	Key string `gorm:"uniqueIndex" json:"-"`

	Teams        []Team        `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"teams"`
	TicketValues []TicketValue `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"ticketValues,omitempty"`

	types.Timestamps
}

// Team rows are per workspace: ID is a surrogate key, Slug is the stable
// catalog identifier that events and ticket values reference.
type Team struct {
	ID          string `gorm:"primarykey" json:"id"`
	WorkspaceID string `gorm:"uniqueIndex:idx_teams_workspace_slug" json:"workspace_id,omitempty"`
	Slug        string `gorm:"uniqueIndex:idx_teams_workspace_slug" json:"slug"`
	Name        string `json:"name"`
	Sport       string `json:"sport,omitempty"`
	Color       string `json:"color,omitempty"`
	Enabled     bool   `json:"enabled"`

	SeatTypes []SeatType `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"seatTypes"`

	types.Timestamps
}

type SeatType struct {
	ID          string `gorm:"primarykey" json:"id"`
	TeamID      string `gorm:"index" json:"team_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TicketValue maps (team, seat type, season) to a face value. TeamID holds
// the team slug, matching what events carry. The lookup table is consulted
// once, at event creation.
type TicketValue struct {
	ID          string  `gorm:"primarykey" json:"-"`
	WorkspaceID string  `gorm:"index" json:"-"`
	TeamID      string  `gorm:"index" json:"teamId"`
	SeatType    string  `json:"seatType"`
	Value       float64 `json:"value"`
	Season      string  `json:"season,omitempty"`
	Source      string  `json:"source,omitempty"`
}

type defaultTeam struct {
	Slug      string
	Name      string
	Sport     string
	Color     string
	SeatTypes []string
}

var defaultTeams = []defaultTeam{
	{
		Slug: "nuggets", Name: "Denver Nuggets", Sport: "NBA", Color: "#0e2240",
		SeatTypes: []string{
			"Suite 1, Row 2, Seat 3",
			"Suite 1, Row 2, Seat 4",
			"Suite 1, Row 3, Seat 1",
			"Suite 1, Row 3, Seat 2",
			"Section 124, Row 1, Seat 15",
			"Section 124, Row 1, Seat 16",
		},
	},
	{
		Slug: "avalanche", Name: "Colorado Avalanche", Sport: "NHL", Color: "#6f263d",
		SeatTypes: []string{
			"Suite 1, Row 2, Seat 3",
			"Suite 1, Row 2, Seat 4",
			"Suite 1, Row 3, Seat 1",
			"Suite 1, Row 3, Seat 2",
		},
	},
	{
		Slug: "broncos", Name: "Denver Broncos", Sport: "NFL", Color: "#fb4f14",
		SeatTypes: []string{
			"Section 105, Row 8, Seat 7",
			"Section 105, Row 8, Seat 8",
			"Section 105, Row 8, Seat 9",
			"Section 105, Row 8, Seat 10",
			"Section 313, Row 7, Seat 7",
			"Section 313, Row 7, Seat 8",
			"Section 313, Row 7, Seat 9",
			"Section 313, Row 7, Seat 10",
		},
	},
	{
		Slug: "concerts", Name: "Concerts & Events", Sport: "Entertainment", Color: "#2563eb",
		SeatTypes: []string{
			"Suite 1, Row 2, Seat 3",
			"Suite 1, Row 2, Seat 4",
			"Suite 1, Row 3, Seat 1",
			"Suite 1, Row 3, Seat 2",
		},
	},
}

var defaultSeatValues = map[string]map[string]float64{
	"nuggets": {
		"Suite 1, Row 2, Seat 3":      350,
		"Suite 1, Row 2, Seat 4":      350,
		"Suite 1, Row 3, Seat 1":      260,
		"Suite 1, Row 3, Seat 2":      260,
		"Section 124, Row 1, Seat 15": 0,
		"Section 124, Row 1, Seat 16": 0,
	},
	"avalanche": {
		"Suite 1, Row 2, Seat 3": 350,
		"Suite 1, Row 2, Seat 4": 350,
		"Suite 1, Row 3, Seat 1": 260,
		"Suite 1, Row 3, Seat 2": 260,
	},
	"broncos": {
		"Section 105, Row 8, Seat 7":  300,
		"Section 105, Row 8, Seat 8":  300,
		"Section 105, Row 8, Seat 9":  300,
		"Section 105, Row 8, Seat 10": 300,
		"Section 313, Row 7, Seat 7":  354,
		"Section 313, Row 7, Seat 8":  354,
		"Section 313, Row 7, Seat 9":  354,
		"Section 313, Row 7, Seat 10": 354,
	},
	"concerts": {
		"Suite 1, Row 2, Seat 3": 350,
		"Suite 1, Row 2, Seat 4": 350,
		"Suite 1, Row 3, Seat 1": 260,
		"Suite 1, Row 3, Seat 2": 260,
	},
}

// DefaultTeams returns the stock team catalog used when seeding a new
// workspace. Every call returns fresh values safe to mutate.
func DefaultTeams(newID func() string) []Team {
	teams := make([]Team, 0, len(defaultTeams))
	for _, dt := range defaultTeams {
		team := Team{
			ID:      newID(),
			Slug:    dt.Slug,
			Name:    dt.Name,
			Sport:   dt.Sport,
			Color:   dt.Color,
			Enabled: true,
		}
		for _, name := range dt.SeatTypes {
			team.SeatTypes = append(team.SeatTypes, SeatType{
				ID:     newID(),
				TeamID: team.ID,
				Name:   name,
			})
		}
		teams = append(teams, team)
	}
	return teams
}

// DefaultTicketValues returns the stock value table for the given season.
func DefaultTicketValues(newID func() string, season string) []TicketValue {
	var values []TicketValue
	for _, dt := range defaultTeams {
		for _, name := range dt.SeatTypes {
			values = append(values, TicketValue{
				ID:       newID(),
				TeamID:   dt.Slug,
				SeatType: name,
				Value:    defaultSeatValues[dt.Slug][name],
				Season:   season,
			})
		}
	}
	return values
}

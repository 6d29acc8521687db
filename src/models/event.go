package models

import (
	"ftm/src/types"
)

type Event struct {
	ID          string `gorm:"primarykey" json:"id"`
	WorkspaceID string `gorm:"index" json:"workspace_id,omitempty"`
	TeamID      string `gorm:"index" json:"teamId"`
	Opponent    string `json:"opponent"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsPlayoff   bool   `json:"isPlayoff"`

	// Tickets are owned by the event and never shared with another event.
	// Insertion order is display order.
	Tickets []Ticket `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets"`

	Stats *EventStats `gorm:"-" json:"stats,omitempty"`

	types.Timestamps
}

type EventStats struct {
	TotalTickets     int     `json:"totalTickets"`
	AssignedTickets  int     `json:"assignedTickets"`
	AvailableTickets int     `json:"availableTickets"`
	SoldTickets      int     `json:"soldTickets"`
	ConfirmedRevenue float64 `json:"confirmedRevenue"`
	IsSoldOut        bool    `json:"isSoldOut"`
}

package models

import (
	"ftm/src/types"
)

type Ticket struct {
	ID         string `gorm:"primarykey" json:"id"`
	EventID    string `gorm:"index" json:"eventId"`
	SeatType   string `json:"seatType"`
	CustomName string `json:"customName,omitempty"`
	Section    string `json:"section,omitempty"`
	Row        string `json:"row,omitempty"`
	Seat       string `json:"seat,omitempty"`

	// Value is the intrinsic face value; Price is what was actually
	// realized and stays 0 unless the ticket is assigned as sold.
	Value  float64 `json:"value"`
	Source string  `json:"source,omitempty"`

	AssignedTo      string               `json:"assignedTo,omitempty"`
	AssignedCompany string               `json:"assignedCompany,omitempty"`
	AssignmentType  types.AssignmentType `json:"assignmentType"`
	Status          types.TicketStatus   `json:"status,omitempty"`
	Price           float64              `json:"price"`
	Confirmed       bool                 `json:"confirmed"`
	Parking         *bool                `json:"parking,omitempty"`

	types.Timestamps
}

// Assigned reports whether the ticket has a recipient. A ticket with no
// recipient has no meaningful assignment type, status or price.
func (t Ticket) Assigned() bool {
	return t.AssignedTo != ""
}

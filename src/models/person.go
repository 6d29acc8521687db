package models

import (
	"time"

	"ftm/src/types"
)

type Person struct {
	ID          string `gorm:"primarykey" json:"id"`
	WorkspaceID string `gorm:"index" json:"workspace_id,omitempty"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	// Append-only audit trail. Entries are snapshots taken at assignment
	// time and are not reconciled when the originating ticket changes.
	AssignmentHistory []AssignmentHistory `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"assignmentHistory"`

	types.Timestamps
}

type AssignmentHistory struct {
	ID             string               `gorm:"primarykey" json:"id"`
	PersonID       string               `gorm:"index" json:"personId,omitempty"`
	EventID        string               `gorm:"index" json:"eventId"`
	EventName      string               `json:"eventName"`
	Date           string               `json:"date"`
	SeatType       string               `json:"seatType"`
	AssignmentType types.AssignmentType `json:"assignmentType"`
	Price          float64              `json:"price"`
	Confirmed      bool                 `json:"confirmed"`
	CreatedAt      time.Time            `gorm:"autoCreateTime:nano" json:"createdAt"`
}

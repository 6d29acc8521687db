package models

import (
	"time"

	"ftm/src/types"
)

// TicketRequest is a public-facing ask for tickets to an event. Status only
// ever moves one way out of pending; there is no reopening.
type TicketRequest struct {
	ID          string `gorm:"primarykey" json:"id"`
	WorkspaceID string `gorm:"index" json:"workspace_id,omitempty"`
	EventID     string `gorm:"index" json:"eventId"`
	UserID      string `gorm:"index" json:"userId"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail,omitempty"`
	UserCompany string `json:"userCompany,omitempty"`
	UserPhone   string `json:"userPhone,omitempty"`

	Priority            types.RequestPriority `json:"priority"`
	Message             string                `json:"message,omitempty"`
	RequestedQuantities types.IntList         `gorm:"type:jsonb" json:"requestedQuantities,omitempty"`

	Status           types.RequestStatus `gorm:"default:'pending'" json:"status"`
	RequestedAt      time.Time           `gorm:"autoCreateTime:nano" json:"requestedAt"`
	ProcessedAt      *time.Time          `json:"processedAt,omitempty"`
	ProcessedBy      string              `json:"processedBy,omitempty"`
	AssignedTicketID *string             `json:"assignedTicketId,omitempty"`
}

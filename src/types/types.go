package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime:nano" json:"createdAt,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:nano" json:"updatedAt,omitempty"`
}

// IntList is stored as a jsonb column.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(l)
	return string(valueString), err
}
func (l *IntList) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	return nil
}

type AssignmentType string

const (
	ASSIGN_SOLD    AssignmentType = "sold"
	ASSIGN_TEAM    AssignmentType = "team"
	ASSIGN_DONATED AssignmentType = "donated"
	ASSIGN_GIFTED  AssignmentType = "gifted"
	ASSIGN_TRADED  AssignmentType = "traded"
	ASSIGN_NONE    AssignmentType = ""
)

type TicketStatus string

const (
	TICKET_TENTATIVE   TicketStatus = "tentative"
	TICKET_CONFIRMED   TicketStatus = "confirmed"
	TICKET_TRANSFERRED TicketStatus = "transferred"
)

type RequestStatus string

const (
	REQUEST_PENDING   RequestStatus = "pending"
	REQUEST_APPROVED  RequestStatus = "approved"
	REQUEST_DENIED    RequestStatus = "denied"
	REQUEST_COMPLETED RequestStatus = "completed"
)

type RequestPriority string

const (
	PRIORITY_WANT RequestPriority = "want"
	PRIORITY_NEED RequestPriority = "need"
	PRIORITY_NICE RequestPriority = "nice-to-have"
)

type WorkspaceType string

const (
	WORKSPACE_FTM    WorkspaceType = "ftm"
	WORKSPACE_CUSTOM WorkspaceType = "custom"
)

type SeatTypeSeed struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name" binding:"required"`
	Value  float64 `json:"value,omitempty"`
	Source string  `json:"source,omitempty"`
}

type CreateEventRequestBody struct {
	TeamID    string         `json:"teamId" binding:"required"`
	Opponent  string         `json:"opponent" binding:"required"`
	Date      string         `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string         `json:"time" binding:"required,datetime=15:04"`
	IsPlayoff bool           `json:"isPlayoff,omitempty"`
	SeatTypes []SeatTypeSeed `json:"seatTypes,omitempty"`
}

type UpdateEventRequestBody struct {
	TeamID    *string `json:"teamId,omitempty"`
	Opponent  *string `json:"opponent,omitempty"`
	Date      *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time,omitempty" binding:"omitempty,datetime=15:04"`
	IsPlayoff *bool   `json:"isPlayoff,omitempty"`
}

// AssignmentPatch is a partial-field merge: nil fields leave the ticket
// untouched. The pricing invariant is applied by utils.ApplyAssignment, the
// only path allowed to mutate assignment state.
type AssignmentPatch struct {
	AssignedTo      *string         `json:"assignedTo,omitempty"`
	AssignedCompany *string         `json:"assignedCompany,omitempty"`
	AssignmentType  *AssignmentType `json:"assignmentType,omitempty" binding:"omitempty,oneof=sold team donated gifted traded"`
	Status          *TicketStatus   `json:"status,omitempty" binding:"omitempty,oneof=tentative confirmed transferred"`
	Price           *float64        `json:"price,omitempty"`
	Confirmed       *bool           `json:"confirmed,omitempty"`
	Parking         *bool           `json:"parking,omitempty"`
}

type AddCustomTicketRequestBody struct {
	Section string  `json:"section" binding:"required"`
	Row     string  `json:"row" binding:"required"`
	Seat    string  `json:"seat" binding:"required"`
	Value   float64 `json:"value,omitempty"`
}

type PersonRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
}

type CreateRequestRequestBody struct {
	EventID             string          `json:"eventId" binding:"required"`
	UserID              string          `json:"userId" binding:"required"`
	UserName            string          `json:"userName" binding:"required"`
	UserEmail           string          `json:"userEmail,omitempty" binding:"omitempty,email"`
	UserCompany         string          `json:"userCompany,omitempty"`
	UserPhone           string          `json:"userPhone,omitempty"`
	Priority            RequestPriority `json:"priority" binding:"required,oneof=want need nice-to-have"`
	Message             string          `json:"message,omitempty"`
	RequestedQuantities []int           `json:"requestedQuantities,omitempty"`
}

type UpdateRequestStatusBody struct {
	Status           RequestStatus `json:"status" binding:"required,oneof=approved denied completed"`
	ProcessedBy      string        `json:"processedBy" binding:"required"`
	AssignedTicketID *string       `json:"assignedTicketId,omitempty"`
}

type CreateWorkspaceRequestBody struct {
	Type             WorkspaceType             `json:"type" binding:"required,oneof=ftm custom"`
	OrganizationName string                    `json:"organizationName,omitempty"`
	Key              string                    `json:"key" binding:"required,workspacekey"`
	SelectedTeams    []string                  `json:"selectedTeams,omitempty"`
	CustomSeatTypes  map[string][]SeatTypeSeed `json:"customSeatTypes,omitempty"`
}

type UpdateWorkspaceRequestBody struct {
	Name             *string `json:"name,omitempty"`
	OrganizationName *string `json:"organizationName,omitempty"`
	Key              *string `json:"key,omitempty" binding:"omitempty,workspacekey"`
}

type EventFilters struct {
	Search         string `form:"search"`
	TeamID         string `form:"team_id"`
	ShowPastEvents bool   `form:"show_past"`
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type TicketURIParams struct {
	ID       string `uri:"id" binding:"required"`
	TicketID string `uri:"tid" binding:"required"`
}

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

package utils

import (
	"context"
	"errors"
	"time"

	"ftm/src/models"
	"ftm/src/store"
	"ftm/src/types"

	"github.com/google/uuid"
)

var ErrRequestProcessed = errors.New("request has already been processed")

// CreateRequest files a pending request. The duplicate guard is
// HasUserRequestedEvent; callers are expected to invoke it first.
func CreateRequest(ctx context.Context, workspaceId string, params *types.CreateRequestRequestBody) (*models.TicketRequest, error) {
	request := models.TicketRequest{
		ID:                  uuid.NewString(),
		WorkspaceID:         workspaceId,
		EventID:             params.EventID,
		UserID:              params.UserID,
		UserName:            params.UserName,
		UserEmail:           params.UserEmail,
		UserCompany:         params.UserCompany,
		UserPhone:           params.UserPhone,
		Priority:            params.Priority,
		Message:             params.Message,
		RequestedQuantities: params.RequestedQuantities,
		Status:              types.REQUEST_PENDING,
		RequestedAt:         time.Now().UTC(),
	}
	if err := store.Current().Requests().Create(ctx, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func HasUserRequestedEvent(ctx context.Context, workspaceId, userId, eventId string) (bool, error) {
	requests, err := store.Current().Requests().List(ctx, workspaceId)
	if err != nil {
		return false, err
	}
	for _, r := range requests {
		if r.UserID == userId && r.EventID == eventId {
			return true, nil
		}
	}
	return false, nil
}

// UpdateRequestStatus moves a pending request to its terminal state. The
// transition is one-directional; a processed request cannot be reopened.
func UpdateRequestStatus(ctx context.Context, workspaceId, id string, status types.RequestStatus, processedBy string, ticketId *string) (*models.TicketRequest, error) {
	requests := store.Current().Requests()
	request, err := requests.Get(ctx, workspaceId, id)
	if err != nil || request == nil {
		return nil, err
	}
	if request.Status != types.REQUEST_PENDING {
		return nil, ErrRequestProcessed
	}
	now := time.Now().UTC()
	request.Status = status
	request.ProcessedAt = &now
	request.ProcessedBy = processedBy
	request.AssignedTicketID = ticketId
	if err := requests.Save(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func DeleteRequest(ctx context.Context, workspaceId, id string) (bool, error) {
	return store.Current().Requests().Delete(ctx, workspaceId, id)
}

func RequestsByEvent(ctx context.Context, workspaceId, eventId string) ([]models.TicketRequest, error) {
	requests, err := store.Current().Requests().List(ctx, workspaceId)
	if err != nil {
		return nil, err
	}
	var out []models.TicketRequest
	for _, r := range requests {
		if r.EventID == eventId {
			out = append(out, r)
		}
	}
	return out, nil
}

func PendingRequestCount(ctx context.Context, workspaceId, eventId string) (int, error) {
	requests, err := RequestsByEvent(ctx, workspaceId, eventId)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, r := range requests {
		if r.Status == types.REQUEST_PENDING {
			count++
		}
	}
	return count, nil
}

package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"ftm/src/models"
	"ftm/src/monitoring"
	"ftm/src/store"
	"ftm/src/types"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
)

const workspaceCacheTTL = 10 * time.Minute

func workspaceCacheKey(key string) string {
	return fmt.Sprintf("ftm:workspace:key:%s", key)
}

// NewWorkspace builds a workspace from the create request. An "ftm" type
// gets the stock team catalog and value table for the current season; a
// custom one keeps only the selected teams and may override their seats.
func NewWorkspace(params *types.CreateWorkspaceRequestBody, now time.Time) *models.Workspace {
	workspaceId := uuid.NewString()
	season := CurrentSeason(now)

	ws := models.Workspace{
		ID:    workspaceId,
		Type:  params.Type,
		Key:   params.Key,
		Teams: models.DefaultTeams(uuid.NewString),
	}
	for i := range ws.Teams {
		ws.Teams[i].WorkspaceID = workspaceId
	}
	ws.TicketValues = models.DefaultTicketValues(uuid.NewString, season)
	for i := range ws.TicketValues {
		ws.TicketValues[i].WorkspaceID = workspaceId
	}

	if params.Type == types.WORKSPACE_FTM {
		ws.Name = "FTM Workspace"
		ws.OrganizationName = "FTM Ticket Management"
		if params.OrganizationName != "" {
			ws.OrganizationName = params.OrganizationName
		}
	} else {
		ws.Name = "Custom Workspace"
		ws.OrganizationName = params.OrganizationName
		selected := make(map[string]bool, len(params.SelectedTeams))
		for _, id := range params.SelectedTeams {
			selected[id] = true
		}
		for i := range ws.Teams {
			team := &ws.Teams[i]
			team.Enabled = selected[team.Slug]
			if custom, ok := params.CustomSeatTypes[team.Slug]; ok {
				team.SeatTypes = nil
				for _, st := range custom {
					id := st.ID
					if id == "" {
						id = uuid.NewString()
					}
					team.SeatTypes = append(team.SeatTypes, models.SeatType{
						ID:     id,
						TeamID: team.ID,
						Name:   st.Name,
					})
				}
			}
		}
	}
	ws.Slug = slug.Make(ws.OrganizationName)
	return &ws
}

// LookupWorkspace resolves a tenant key to its workspace, consulting the
// redis cache first. A nil redis client degrades to plain store lookups.
func LookupWorkspace(ctx context.Context, rdb *redis.Client, key string) (*models.Workspace, error) {
	if key == "" {
		return nil, nil
	}
	if rdb != nil {
		cached, err := rdb.Get(ctx, workspaceCacheKey(key)).Result()
		if err == nil {
			var ws models.Workspace
			if err := json.Unmarshal([]byte(cached), &ws); err == nil {
				monitoring.WorkspaceCacheHits.Inc()
				return &ws, nil
			}
			log.Printf("Error decoding cached workspace: %s\n", err.Error())
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("Error reading workspace from cache: %s\n", err.Error())
		}
		monitoring.WorkspaceCacheMisses.Inc()
	}

	ws, err := store.Current().Workspaces().FindByKey(ctx, key)
	if err != nil || ws == nil {
		return nil, err
	}
	if rdb != nil {
		payload, err := json.Marshal(ws)
		if err == nil {
			if err := rdb.SetEx(ctx, workspaceCacheKey(key), string(payload), workspaceCacheTTL).Err(); err != nil {
				log.Printf("Error caching workspace: %s\n", err.Error())
			}
		}
	}
	return ws, nil
}

func InvalidateWorkspaceCache(ctx context.Context, rdb *redis.Client, key string) {
	if rdb == nil || key == "" {
		return
	}
	if err := rdb.Del(ctx, workspaceCacheKey(key)).Err(); err != nil {
		log.Printf("Error invalidating workspace cache: %s\n", err.Error())
	}
}

// UpdateWorkspaceMeta merges tenant metadata changes. Changing the key
// invalidates the old cache entry.
func UpdateWorkspaceMeta(ctx context.Context, rdb *redis.Client, id string, params *types.UpdateWorkspaceRequestBody) (*models.Workspace, error) {
	workspaces := store.Current().Workspaces()
	ws, err := workspaces.Get(ctx, id)
	if err != nil || ws == nil {
		return nil, err
	}
	oldKey := ws.Key
	if params.Name != nil {
		ws.Name = *params.Name
	}
	if params.OrganizationName != nil {
		ws.OrganizationName = *params.OrganizationName
		ws.Slug = slug.Make(ws.OrganizationName)
	}
	if params.Key != nil {
		ws.Key = *params.Key
	}
	if err := workspaces.Save(ctx, ws); err != nil {
		return nil, err
	}
	InvalidateWorkspaceCache(ctx, rdb, oldKey)
	if ws.Key != oldKey {
		InvalidateWorkspaceCache(ctx, rdb, ws.Key)
	}
	return ws, nil
}

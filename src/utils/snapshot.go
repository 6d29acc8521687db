package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ftm/src/analytics"
	"ftm/src/monitoring"
	"ftm/src/store"

	"github.com/redis/go-redis/v9"
)

const statsSnapshotTTL = 2 * time.Hour

func statsSnapshotKey(workspaceID string) string {
	return fmt.Sprintf("ftm:stats:%s", workspaceID)
}

type dashboardSnapshot struct {
	WorkspaceID string                      `json:"workspaceId"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Events      analytics.EventStatistics   `json:"events"`
	Requests    analytics.RequestStatistics `json:"requests"`
}

// SnapshotDashboardStats precomputes the dashboard counters for every
// workspace and caches them in redis. Runs on a schedule; a nil redis client
// makes it a no-op.
func SnapshotDashboardStats(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	workspaces, err := store.Current().Workspaces().List(ctx)
	if err != nil {
		log.Printf("stats snapshot: list workspaces: %s\n", err.Error())
		return
	}
	now := time.Now().UTC()
	for _, ws := range workspaces {
		events, err := store.Current().Events().List(ctx, ws.ID)
		if err != nil {
			log.Printf("stats snapshot: list events for %s: %s\n", ws.ID, err.Error())
			continue
		}
		requests, err := store.Current().Requests().List(ctx, ws.ID)
		if err != nil {
			log.Printf("stats snapshot: list requests for %s: %s\n", ws.ID, err.Error())
			continue
		}
		snap := dashboardSnapshot{
			WorkspaceID: ws.ID,
			GeneratedAt: now,
			Events:      analytics.GetEventStatistics(events, now),
			Requests:    analytics.GetRequestStatistics(requests, events),
		}
		raw, err := json.Marshal(snap)
		if err != nil {
			log.Printf("stats snapshot: marshal for %s: %s\n", ws.ID, err.Error())
			continue
		}
		if err := rdb.SetEx(ctx, statsSnapshotKey(ws.ID), raw, statsSnapshotTTL).Err(); err != nil {
			log.Printf("stats snapshot: cache for %s: %s\n", ws.ID, err.Error())
			continue
		}
		monitoring.StatsSnapshots.Inc()
	}
}

// CachedDashboardStats returns the last snapshot for a workspace, or false
// when none is cached.
func CachedDashboardStats(ctx context.Context, rdb *redis.Client, workspaceID string) (json.RawMessage, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, statsSnapshotKey(workspaceID)).Bytes()
	if err != nil {
		return nil, false
	}
	return json.RawMessage(raw), true
}

package utils

import (
	"context"
	"testing"
	"time"

	"ftm/src/store"
	"ftm/src/types"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestSnapshotDashboardStats(t *testing.T) {
	useMemoryStore(t)
	ctx := context.Background()

	ws := NewWorkspace(&types.CreateWorkspaceRequestBody{
		Type: types.WORKSPACE_FTM,
		Key:  "snap-key",
	}, time.Now())
	assert.Nil(t, store.Current().Workspaces().Create(ctx, ws))

	_, err := CreateNewEvent(ctx, &types.CreateEventRequestBody{
		TeamID:   "nuggets",
		Opponent: "Lakers",
		Date:     "2030-11-02",
		Time:     "19:00",
		SeatTypes: []types.SeatTypeSeed{
			{Name: "Club Level 1", Value: 350},
		},
	}, ws, time.Now())
	assert.Nil(t, err)

	rdb, mock := redismock.NewClientMock()
	// The payload carries a generation timestamp, so match on key only.
	mock.CustomMatch(func(expected, actual []interface{}) error {
		return nil
	}).ExpectSetEx(statsSnapshotKey(ws.ID), "", statsSnapshotTTL).SetVal("OK")

	SnapshotDashboardStats(ctx, rdb)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSnapshotDashboardStatsNilRedis(t *testing.T) {
	useMemoryStore(t)
	// Must not panic or touch the store.
	SnapshotDashboardStats(context.Background(), nil)
}

func TestCachedDashboardStats(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()

	payload := `{"workspaceId":"ws-1","events":{"totalEvents":3}}`
	mock.ExpectGet(statsSnapshotKey("ws-1")).SetVal(payload)

	raw, ok := CachedDashboardStats(ctx, rdb, "ws-1")
	assert.True(t, ok)
	assert.Equal(t, int64(3), gjson.GetBytes(raw, "events.totalEvents").Int())

	mock.ExpectGet(statsSnapshotKey("ws-2")).RedisNil()
	_, ok = CachedDashboardStats(ctx, rdb, "ws-2")
	assert.False(t, ok)

	assert.Nil(t, mock.ExpectationsWereMet())
}

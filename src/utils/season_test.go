package utils

import (
	"testing"
	"time"

	"ftm/src/models"

	"github.com/stretchr/testify/assert"
)

func TestCurrentSeason(t *testing.T) {
	sept := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-2026", CurrentSeason(sept))

	aug := time.Date(2025, time.August, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-2025", CurrentSeason(aug))

	jan := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-2026", CurrentSeason(jan))

	dec := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-2026", CurrentSeason(dec))
}

func TestIsMountainDST(t *testing.T) {
	// 2025: DST runs March 9 through November 2.
	assert.False(t, IsMountainDST(time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsMountainDST(time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsMountainDST(time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsMountainDST(time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)))
	assert.False(t, IsMountainDST(time.Date(2025, time.November, 2, 12, 0, 0, 0, time.UTC)))
	assert.False(t, IsMountainDST(time.Date(2025, time.December, 25, 12, 0, 0, 0, time.UTC)))
}

func TestMountainTimeOffset(t *testing.T) {
	summer := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, summer.Hour()-MountainTime(summer).Hour())

	winter := time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, winter.Hour()-MountainTime(winter).Hour())
}

func TestEventInstant(t *testing.T) {
	e := models.Event{Date: "2025-10-04", Time: "19:30"}
	instant := EventInstant(e)
	assert.Equal(t, 2025, instant.Year())
	assert.Equal(t, 19, instant.Hour())
	assert.Equal(t, 30, instant.Minute())

	// Missing time falls back to midnight on the event date.
	dateOnly := models.Event{Date: "2025-10-04"}
	assert.Equal(t, 0, EventInstant(dateOnly).Hour())

	// Unparseable dates produce the zero instant.
	broken := models.Event{Date: "not-a-date", Time: "25:99"}
	assert.True(t, EventInstant(broken).IsZero())
}

func TestIsPastEvent(t *testing.T) {
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

	past := models.Event{Date: "2025-10-01", Time: "19:00"}
	assert.True(t, IsPastEvent(past, now))

	upcoming := models.Event{Date: "2025-11-20", Time: "19:00"}
	assert.False(t, IsPastEvent(upcoming, now))
}

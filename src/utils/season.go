package utils

import (
	"fmt"
	"time"

	"ftm/src/config"
	"ftm/src/models"
)

// CurrentSeason derives the season label for an instant. Seasons start in
// September: from September onward the season starts in the current calendar
// year, before that in the previous one.
func CurrentSeason(now time.Time) string {
	startYear := now.Year()
	if int(now.Month()) < 9 {
		startYear--
	}
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}

// IsMountainDST approximates US daylight saving: second Sunday in March
// through first Sunday in November.
func IsMountainDST(t time.Time) bool {
	year := t.Year()
	march8 := time.Date(year, time.March, 8, 0, 0, 0, 0, t.Location())
	secondSunday := march8.AddDate(0, 0, (7-int(march8.Weekday()))%7)
	nov1 := time.Date(year, time.November, 1, 0, 0, 0, 0, t.Location())
	firstSunday := nov1.AddDate(0, 0, (7-int(nov1.Weekday()))%7)
	return !t.Before(secondSunday) && t.Before(firstSunday)
}

// MountainTime returns the US Mountain Time wall clock for the given instant,
// expressed in UTC. The offset is a fixed-rule approximation (-6 during DST,
// -7 otherwise) rather than a tzdata lookup.
func MountainTime(now time.Time) time.Time {
	offset := -7
	if IsMountainDST(now) {
		offset = -6
	}
	return now.UTC().Add(time.Duration(offset) * time.Hour)
}

// EventInstant parses an event's date and time as a naive wall-clock value.
// It is compared against MountainTime, never against raw UTC.
func EventInstant(e models.Event) time.Time {
	t, err := time.Parse(config.DATE_FORMAT+"T"+config.TIME_FORMAT, e.Date+"T"+e.Time)
	if err != nil {
		t, err = time.Parse(config.DATE_FORMAT, e.Date)
		if err != nil {
			return time.Time{}
		}
	}
	return t
}

// IsPastEvent reports whether the event's Mountain-Time instant is strictly
// before now.
func IsPastEvent(e models.Event, now time.Time) bool {
	return EventInstant(e).Before(MountainTime(now))
}

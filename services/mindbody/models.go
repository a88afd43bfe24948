package mindbody

import (
	"net/url"
	"strconv"
	"time"

	"slotify/models"
)

// AvailabilityFilter carries the query parameters for an availability fetch.
// Limit/Offset are passed through to the upstream, which is not trusted to
// honor them exactly; the aggregator re-slices the built result.
type AvailabilityFilter struct {
	SessionTypeIDs []int
	LocationIDs    []int
	StaffIDs       []int
	StartDateTime  time.Time
	EndDateTime    time.Time
	Limit          int
	Offset         int
}

func (f AvailabilityFilter) query() url.Values {
	q := url.Values{}
	appendInts(q, "sessionTypeIds", f.SessionTypeIDs)
	appendInts(q, "locationIds", f.LocationIDs)
	appendInts(q, "staffIds", f.StaffIDs)
	q.Set("startDateTime", f.StartDateTime.UTC().Format(time.RFC3339))
	q.Set("endDateTime", f.EndDateTime.UTC().Format(time.RFC3339))
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return q
}

func appendInts(q url.Values, key string, ids []int) {
	for _, id := range ids {
		q.Add(key, strconv.Itoa(id))
	}
}

// Response envelopes for the upstream resources.
type availabilityEnvelope struct {
	Availabilities []models.AvailabilitySlot `json:"availabilities"`
}

type incrementsEnvelope struct {
	Increments []models.BusinessHourIncrement `json:"businessHourIncrements"`
}

type offeringsEnvelope struct {
	Offerings []models.Offering `json:"offerings"`
}

type referenceEnvelope struct {
	Staff        []models.Staff       `json:"staff"`
	Locations    []models.Location    `json:"locations"`
	SessionTypes []models.SessionType `json:"sessionTypes"`
	Programs     []models.Program     `json:"programs"`
}

type upstreamErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

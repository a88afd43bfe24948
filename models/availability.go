package models

import "time"

// AvailabilitySlot is one bookable appointment window as returned by the
// upstream availability resource. Already-reserved windows never appear here;
// the upstream guarantees that.
type AvailabilitySlot struct {
	SessionTypeID       int       `json:"sessionTypeId"`
	StaffID             int       `json:"staffId"`
	LocationID          int       `json:"locationId"`
	StartDateTime       time.Time `json:"startDateTime"`
	EndDateTime         time.Time `json:"endDateTime"`
	BookableEndDateTime time.Time `json:"bookableEndDateTime"` // last time an appointment may start
	EveryMins           int       `json:"everyMins,omitempty"`
}

// BusinessHourIncrement is a recurring time-of-day value ("HH:MM:SS", no date)
// marking one valid booking start for a session type, independent of any
// particular day's availability.
type BusinessHourIncrement struct {
	SessionTypeID int    `json:"sessionTypeId"`
	Time          string `json:"time"`
}

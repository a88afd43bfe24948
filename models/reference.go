package models

import "strings"

// Staff is an upstream staff member record.
type Staff struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio,omitempty"`
}

// FullName joins the name parts, tolerating records that only carry one.
func (s Staff) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
}

// Location is an upstream location record.
type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// SessionType names a treatment category; its name is the treatment display
// name used for offering matching.
type SessionType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Program groups session types for program-based queries.
type Program struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	SessionTypeIDs []int  `json:"sessionTypeIds"`
}

// ReferenceData holds the staff/location/session-type/program lookup tables,
// fetched once and held for the duration of a single aggregation call.
type ReferenceData struct {
	Staff        map[int]Staff       `json:"staff"`
	Locations    map[int]Location    `json:"locations"`
	SessionTypes map[int]SessionType `json:"sessionTypes"`
	Programs     map[int]Program     `json:"programs"`
}

package models

import "time"

// UnifiedSlot is the joined record handed to consumers: one availability
// window enriched with filtered increments, matched offerings and resolved
// reference data. Built once per aggregation call and never mutated.
type UnifiedSlot struct {
	ID                  string     `json:"id"`
	SessionTypeID       int        `json:"sessionTypeId"`
	StaffID             int        `json:"staffId"`
	LocationID          int        `json:"locationId"`
	TreatmentName       string     `json:"treatmentName"`
	StaffName           string     `json:"staffName"`
	StaffBio            string     `json:"staffBio,omitempty"`
	LocationName        string     `json:"locationName"`
	LocationAddress     string     `json:"locationAddress,omitempty"`
	Date                string     `json:"date"` // e.g. "2025-02-25"
	StartDateTime       time.Time  `json:"startDateTime"`
	EndDateTime         time.Time  `json:"endDateTime"`
	BookableEndDateTime time.Time  `json:"bookableEndDateTime"`
	EveryMins           int        `json:"everyMins,omitempty"`
	ActiveTimes         []string   `json:"activeTimes"` // subset of the session type's increments inside [start, end)
	Offerings           []Offering `json:"offerings"`   // may be empty: price unknown is a valid slot state
}

// Pagination echoes what the caller asked for against what was returned.
type Pagination struct {
	RequestedLimit  int `json:"requestedLimit"`
	RequestedOffset int `json:"requestedOffset"`
	PageSize        int `json:"pageSize"`
	TotalMatched    int `json:"totalMatched"` // slot count before the offset/limit slice
}

// QueryMetadata echoes the resolved query parameters verbatim for traceability.
type QueryMetadata struct {
	ProgramID      int    `json:"programId,omitempty"`
	SessionTypeIDs []int  `json:"sessionTypeIds"`
	LocationIDs    []int  `json:"locationIds,omitempty"`
	StaffIDs       []int  `json:"staffIds,omitempty"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

// UnifiedResponse is the aggregation result envelope.
type UnifiedResponse struct {
	Slots      []UnifiedSlot `json:"slots"`
	Total      int           `json:"total"` // count after pagination slicing
	Pagination Pagination    `json:"pagination"`
	Metadata   QueryMetadata `json:"metadata"`
}

package slots

import (
	"context"

	"slotify/models"
	"slotify/services/mindbody"
)

// Args are the caller-facing query options for an aggregation call. All
// fields are optional except that at least one of SessionTypeIDs/ProgramID
// and both of StartDate/EndDate must be present. Dates are ISO-8601 with a
// UTC designator, e.g. "2025-02-25T00:00:00Z". Limit <= 0 means no cap.
type Args struct {
	SessionTypeIDs []int
	ProgramID      int
	StartDate      string
	EndDate        string
	LocationIDs    []int
	StaffIDs       []int
	Limit          int
	Offset         int
}

// SlotService exposes the unified bookable-slot aggregation.
type SlotService interface {
	GetUnifiedBookableSlots(ctx context.Context, args Args) (*models.UnifiedResponse, error)
}

// DefaultSlotService implements SlotService against the upstream client.
// It holds no state across calls.
type DefaultSlotService struct {
	Client mindbody.API
}

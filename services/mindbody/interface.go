package mindbody

import (
	"context"

	"slotify/models"
)

// API is the read surface of the upstream scheduling platform. Every call
// accepts an optional pre-obtained token; pass "" to let the client obtain
// one through its token provider. Results are always fetched fresh — caching
// availability or offerings would misrepresent what is bookable.
type API interface {
	FetchAvailability(ctx context.Context, filter AvailabilityFilter, token string) ([]models.AvailabilitySlot, error)
	FetchIncrements(ctx context.Context, sessionTypeIDs []int, token string) ([]models.BusinessHourIncrement, error)
	FetchOfferings(ctx context.Context, sessionTypeIDs []int, token string) ([]models.Offering, error)
	FetchReferenceData(ctx context.Context, token string) (*models.ReferenceData, error)
}

package slots

import (
	"testing"

	"slotify/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildResponseEchoesQueryVerbatim(t *testing.T) {
	query := models.QueryMetadata{
		ProgramID:      20,
		SessionTypeIDs: []int{17, 18},
		LocationIDs:    []int{1},
		StartDate:      "2025-02-25T00:00:00Z",
		EndDate:        "2025-02-26T00:00:00Z",
	}
	sliced := []models.UnifiedSlot{{ID: "a"}, {ID: "b"}}

	resp := BuildResponse(sliced, 10, 5, 42, query)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Pagination.PageSize)
	assert.Equal(t, 10, resp.Pagination.RequestedLimit)
	assert.Equal(t, 5, resp.Pagination.RequestedOffset)
	assert.Equal(t, 42, resp.Pagination.TotalMatched)
	assert.Equal(t, query, resp.Metadata)
}

func TestBuildResponseNilSlotsBecomesEmptyList(t *testing.T) {
	resp := BuildResponse(nil, 0, 0, 0, models.QueryMetadata{})

	assert.NotNil(t, resp.Slots)
	assert.Zero(t, resp.Total)
}

func TestPaginate(t *testing.T) {
	all := []models.UnifiedSlot{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Len(t, paginate(all, 0, 0), 3)
	assert.Equal(t, "b", paginate(all, 1, 1)[0].ID)
	assert.Len(t, paginate(all, 10, 2), 1)
	assert.Empty(t, paginate(all, 1, 5))
	assert.Len(t, paginate(all, 2, -1), 2)
}

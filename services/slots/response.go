package slots

import "slotify/models"

// BuildResponse wraps the sliced slot list with pagination and query
// metadata. Total counts the slots actually returned; totalBeforeSlice is
// what the build phase assembled before offset/limit applied. The metadata
// echoes the resolved query parameters verbatim — no transformation.
func BuildResponse(sliced []models.UnifiedSlot, requestedLimit, requestedOffset, totalBeforeSlice int, query models.QueryMetadata) *models.UnifiedResponse {
	if sliced == nil {
		sliced = []models.UnifiedSlot{}
	}
	return &models.UnifiedResponse{
		Slots: sliced,
		Total: len(sliced),
		Pagination: models.Pagination{
			RequestedLimit:  requestedLimit,
			RequestedOffset: requestedOffset,
			PageSize:        len(sliced),
			TotalMatched:    totalBeforeSlice,
		},
		Metadata: query,
	}
}

// paginate re-slices defensively: the upstream receives limit/offset too, but
// is not trusted to honor them exactly. limit <= 0 means no cap.
func paginate(all []models.UnifiedSlot, limit, offset int) []models.UnifiedSlot {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil
	}
	sliced := all[offset:]
	if limit > 0 && limit < len(sliced) {
		sliced = sliced[:limit]
	}
	return sliced
}

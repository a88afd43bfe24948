package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"slotify/services/mindbody"
	"slotify/services/slots"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves the unified bookable-slot endpoint.
type SlotHandler struct {
	Service slots.SlotService
}

func NewSlotHandler(service slots.SlotService) *SlotHandler {
	return &SlotHandler{Service: service}
}

// GetUnifiedSlots handles GET /api/slots/unified.
func (h *SlotHandler) GetUnifiedSlots(c *gin.Context) {
	logger := getLogger(c)

	args := slots.Args{
		SessionTypeIDs: parseIntList(c, "sessionTypeIds"),
		ProgramID:      parseInt(c.Query("programId")),
		StartDate:      c.Query("startDate"),
		EndDate:        c.Query("endDate"),
		LocationIDs:    parseIntList(c, "locationIds"),
		StaffIDs:       parseIntList(c, "staffIds"),
		Limit:          parseInt(c.Query("limit")),
		Offset:         parseInt(c.Query("offset")),
	}

	resp, err := h.Service.GetUnifiedBookableSlots(c.Request.Context(), args)
	if err != nil {
		status := statusFor(err)
		logger.Warn("slot aggregation failed", zap.Int("status", status), zap.Error(err))
		utils.JSONError(c, status, "failed to aggregate bookable slots", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// statusFor maps the aggregation error taxonomy onto HTTP statuses. Errors
// surface unchanged in the response details; only the status is ours.
func statusFor(err error) int {
	var missingParams *slots.MissingParamsError
	var missingCreds *mindbody.MissingCredentialsError
	var authErr *mindbody.AuthError
	var upstream *mindbody.UpstreamError

	switch {
	case errors.As(err, &missingParams):
		return http.StatusBadRequest
	case errors.As(err, &missingCreds):
		return http.StatusInternalServerError
	case errors.As(err, &authErr):
		return http.StatusBadGateway
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseIntList reads a repeated or comma-separated integer query parameter.
func parseIntList(c *gin.Context, key string) []int {
	var ids []int
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if id, err := strconv.Atoi(part); err == nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func parseInt(raw string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(raw))
	return n
}

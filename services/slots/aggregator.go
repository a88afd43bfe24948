package slots

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"slotify/models"
	"slotify/services/mindbody"
	"slotify/utils"

	"go.uber.org/zap"
)

// GetUnifiedBookableSlots fetches availability, increments and offerings from
// the upstream — one call each, concurrently — and joins them into unified
// slots. The call is all-or-nothing: any upstream failure aborts it and
// propagates typed; partial results are never returned.
func (s *DefaultSlotService) GetUnifiedBookableSlots(ctx context.Context, args Args) (*models.UnifiedResponse, error) {
	logger := utils.GetLogger()

	if len(args.SessionTypeIDs) == 0 && args.ProgramID == 0 {
		return nil, NewMissingParamsError("either sessionTypeIds or programId is required")
	}
	windowStart, windowEnd, err := parseWindow(args.StartDate, args.EndDate)
	if err != nil {
		return nil, err
	}

	ref, err := s.Client.FetchReferenceData(ctx, "")
	if err != nil {
		return nil, err
	}

	sessionTypeIDs := args.SessionTypeIDs
	if len(sessionTypeIDs) == 0 {
		program, ok := ref.Programs[args.ProgramID]
		if !ok || len(program.SessionTypeIDs) == 0 {
			return nil, NewMissingParamsError(fmt.Sprintf("programId %d resolves to no session types", args.ProgramID))
		}
		sessionTypeIDs = program.SessionTypeIDs
	}

	// Fetch phase: the three datasets have no data dependency on each other,
	// so they go out together. Session types are batched into each call —
	// the upstream call count stays flat no matter how many slots come back.
	filter := mindbody.AvailabilityFilter{
		SessionTypeIDs: sessionTypeIDs,
		LocationIDs:    args.LocationIDs,
		StaffIDs:       args.StaffIDs,
		StartDateTime:  windowStart,
		EndDateTime:    windowEnd,
		Limit:          args.Limit,
		Offset:         args.Offset,
	}

	var (
		wg        sync.WaitGroup
		avail     []models.AvailabilitySlot
		incs      []models.BusinessHourIncrement
		offs      []models.Offering
		fetchErrs [3]error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		avail, fetchErrs[0] = s.Client.FetchAvailability(ctx, filter, "")
	}()
	go func() {
		defer wg.Done()
		incs, fetchErrs[1] = s.Client.FetchIncrements(ctx, sessionTypeIDs, "")
	}()
	go func() {
		defer wg.Done()
		offs, fetchErrs[2] = s.Client.FetchOfferings(ctx, sessionTypeIDs, "")
	}()
	wg.Wait()
	for _, ferr := range fetchErrs {
		if ferr != nil {
			return nil, ferr
		}
	}

	// Build phase: synchronous over the fetched lists, in upstream order.
	incsByType := groupIncrements(incs)
	offsByType := groupOfferings(offs)

	unified := make([]models.UnifiedSlot, 0, len(avail))
	for _, raw := range avail {
		unified = append(unified, buildSlot(raw, ref, incsByType, offsByType))
	}

	sliced := paginate(unified, args.Limit, args.Offset)
	query := models.QueryMetadata{
		ProgramID:      args.ProgramID,
		SessionTypeIDs: sessionTypeIDs,
		LocationIDs:    args.LocationIDs,
		StaffIDs:       args.StaffIDs,
		StartDate:      args.StartDate,
		EndDate:        args.EndDate,
	}

	logger.Debug("aggregated bookable slots",
		zap.Int("fetched", len(avail)),
		zap.Int("returned", len(sliced)),
		zap.Ints("sessionTypeIds", sessionTypeIDs))

	return BuildResponse(sliced, args.Limit, args.Offset, len(unified), query), nil
}

func parseWindow(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, NewMissingParamsError("both startDate and endDate are required")
	}
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, NewMissingParamsError(fmt.Sprintf("startDate %q is not ISO-8601", startDate))
	}
	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, NewMissingParamsError(fmt.Sprintf("endDate %q is not ISO-8601", endDate))
	}
	return start, end, nil
}

func buildSlot(
	raw models.AvailabilitySlot,
	ref *models.ReferenceData,
	incsByType map[int][]string,
	offsByType map[int][]models.Offering,
) models.UnifiedSlot {
	staff := ref.Staff[raw.StaffID]
	location := ref.Locations[raw.LocationID]
	treatment := ref.SessionTypes[raw.SessionTypeID].Name

	active := FilterIncrements(incsByType[raw.SessionTypeID], raw.StartDateTime, raw.EndDateTime)
	if active == nil {
		active = []string{}
	}
	matched := MatchOfferings(offsByType[raw.SessionTypeID], treatment, staff.FullName())
	if matched == nil {
		matched = []models.Offering{}
	}

	return models.UnifiedSlot{
		ID:                  compositeID(raw),
		SessionTypeID:       raw.SessionTypeID,
		StaffID:             raw.StaffID,
		LocationID:          raw.LocationID,
		TreatmentName:       treatment,
		StaffName:           staff.FullName(),
		StaffBio:            staff.Bio,
		LocationName:        location.Name,
		LocationAddress:     location.Address,
		Date:                raw.StartDateTime.Format("2006-01-02"),
		StartDateTime:       raw.StartDateTime,
		EndDateTime:         raw.EndDateTime,
		BookableEndDateTime: raw.BookableEndDateTime,
		EveryMins:           raw.EveryMins,
		ActiveTimes:         active,
		Offerings:           matched,
	}
}

// compositeID is deterministic for a (sessionType, staff, location, date,
// time) tuple: same inputs, same identifier, across calls.
func compositeID(raw models.AvailabilitySlot) string {
	date := raw.StartDateTime.Format("2006-01-02")
	clock := strings.ReplaceAll(raw.StartDateTime.Format("15:04:05"), ":", "")
	return fmt.Sprintf("%d-%d-%d-%s-%s", raw.SessionTypeID, raw.StaffID, raw.LocationID, date, clock)
}

func groupIncrements(incs []models.BusinessHourIncrement) map[int][]string {
	grouped := make(map[int][]string)
	for _, inc := range incs {
		grouped[inc.SessionTypeID] = append(grouped[inc.SessionTypeID], inc.Time)
	}
	return grouped
}

func groupOfferings(offs []models.Offering) map[int][]models.Offering {
	grouped := make(map[int][]models.Offering)
	for _, off := range offs {
		grouped[off.SessionTypeID] = append(grouped[off.SessionTypeID], off)
	}
	return grouped
}

package slots

import (
	"strings"

	"slotify/models"
)

// MatchOfferings selects the offerings from pool whose name contains both the
// treatment name and the staff member — the full name or any single name
// token, so "Katia Narain Phillips" matches an offering naming just "Katia"
// or just "Phillips". Matching is case-insensitive and both predicates must
// hold: a treatment-only or staff-only hit is rejected, which is what keeps
// an "Acupuncture" offering off a "Deep tissue massage" slot they share a
// staff member with. Pool order is preserved; zero matches is a valid result,
// not an error.
func MatchOfferings(pool []models.Offering, treatmentName, staffFullName string) []models.Offering {
	treatment := strings.ToLower(strings.TrimSpace(treatmentName))
	staff := strings.ToLower(strings.TrimSpace(staffFullName))
	if treatment == "" || staff == "" {
		return nil
	}
	tokens := strings.Fields(staff)

	var matched []models.Offering
	for _, off := range pool {
		name := strings.ToLower(off.Name)
		if !strings.Contains(name, treatment) {
			continue
		}
		if !containsStaff(name, staff, tokens) {
			continue
		}
		matched = append(matched, off)
	}
	return matched
}

func containsStaff(name, fullName string, tokens []string) bool {
	if strings.Contains(name, fullName) {
		return true
	}
	for _, tok := range tokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}

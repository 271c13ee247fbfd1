package utils

import (
	"strings"
)

// FacilityMatches performs fuzzy matching between a requested canonical
// facility name and one facility string on a school. Containment is
// checked in both directions, so "Swimming Pool" matches both
// "swimming pool (olympic)" and "Pool".
func FacilityMatches(requested, facility string) bool {
	reqLower := strings.ToLower(strings.TrimSpace(requested))
	facLower := strings.ToLower(strings.TrimSpace(facility))

	if reqLower == "" || facLower == "" {
		return false
	}

	return strings.Contains(facLower, reqLower) || strings.Contains(reqLower, facLower)
}

// HasAllFacilities reports whether every requested facility fuzzy
// matches at least one facility on the school
func HasAllFacilities(requested []string, schoolFacilities []string) bool {
	for _, want := range requested {
		found := false
		for _, have := range schoolFacilities {
			if FacilityMatches(want, have) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

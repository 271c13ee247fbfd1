package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacilityMatches(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		facility  string
		want      bool
	}{
		{"exact", "Library", "Library", true},
		{"case insensitive", "library", "LIBRARY", true},
		{"facility more specific", "Swimming Pool", "Swimming Pool (Olympic)", true},
		{"facility less specific", "Swimming Pool", "Pool", true},
		{"surrounding whitespace", "  Library ", "library", true},
		{"unrelated", "Library", "Cafeteria", false},
		{"empty requested", "", "Library", false},
		{"empty facility", "Library", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FacilityMatches(tt.requested, tt.facility))
		})
	}
}

func TestHasAllFacilities(t *testing.T) {
	school := []string{"Library", "Swimming Pool (Olympic)", "Wi-Fi Campus"}

	assert.True(t, HasAllFacilities(nil, school))
	assert.True(t, HasAllFacilities([]string{"Library"}, school))
	assert.True(t, HasAllFacilities([]string{"Swimming Pool", "Wi-Fi"}, school))
	assert.False(t, HasAllFacilities([]string{"Library", "Hostel"}, school))
	assert.False(t, HasAllFacilities([]string{"Hostel"}, nil))
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaExtractor_NoKeywords(t *testing.T) {
	extractor := NewCriteriaExtractor()

	tests := []string{
		"hello how are you",
		"what can you do for me",
		"tell me something interesting",
		"",
	}

	for _, message := range tests {
		t.Run(message, func(t *testing.T) {
			criteria := extractor.Extract(message)
			assert.True(t, criteria.IsEmpty(), "expected empty criteria for %q, got %+v", message, criteria)
		})
	}
}

func TestCriteriaExtractor_FeeCeiling(t *testing.T) {
	extractor := NewCriteriaExtractor()

	tests := []struct {
		name    string
		message string
		want    int
	}{
		{"plain", "schools under 50000", 50000},
		{"uppercase", "Schools UNDER 50000", 50000},
		{"rupee marker", "schools under ₹50000", 50000},
		{"rs marker", "schools under rs. 50000", 50000},
		{"below", "fees below 75000", 75000},
		{"less than", "less than 120000 per year", 120000},
		{"maximum", "maximum 90000", 90000},
		{"commas", "under 1,00,000", 100000},
		{"k suffix", "under 50k", 50000},
		{"lakh suffix", "under 2 lakh", 200000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := extractor.Extract(tt.message)
			require.NotNil(t, criteria.FeesMax)
			assert.Equal(t, tt.want, *criteria.FeesMax)
			assert.Nil(t, criteria.FeesMin, "ceiling phrase must not set a floor")
		})
	}
}

func TestCriteriaExtractor_FeeFloor(t *testing.T) {
	extractor := NewCriteriaExtractor()

	criteria := extractor.Extract("schools above 30000")
	require.NotNil(t, criteria.FeesMin)
	assert.Equal(t, 30000, *criteria.FeesMin)
	assert.Nil(t, criteria.FeesMax)

	criteria = extractor.Extract("more than 1 lakh fees")
	require.NotNil(t, criteria.FeesMin)
	assert.Equal(t, 100000, *criteria.FeesMin)
}

func TestCriteriaExtractor_IndependentCategories(t *testing.T) {
	extractor := NewCriteriaExtractor()

	criteria := extractor.Extract("CBSE schools in Mumbai")
	require.NotNil(t, criteria.Board)
	require.NotNil(t, criteria.City)
	assert.Equal(t, "CBSE", *criteria.Board)
	assert.Equal(t, "Mumbai", *criteria.City)
}

func TestCriteriaExtractor_ScenarioA(t *testing.T) {
	extractor := NewCriteriaExtractor()

	criteria := extractor.Extract("Show me CBSE schools in Delhi under 100000")
	require.NotNil(t, criteria.City)
	require.NotNil(t, criteria.Board)
	require.NotNil(t, criteria.FeesMax)
	assert.Equal(t, "Delhi", *criteria.City)
	assert.Equal(t, "CBSE", *criteria.Board)
	assert.Equal(t, 100000, *criteria.FeesMax)
	assert.Nil(t, criteria.FeesMin)
	assert.Nil(t, criteria.SchoolType)
}

func TestCriteriaExtractor_ScenarioB(t *testing.T) {
	extractor := NewCriteriaExtractor()

	criteria := extractor.Extract("schools with swimming pool and library")
	assert.ElementsMatch(t, []string{"Swimming Pool", "Library"}, criteria.Facilities)
}

func TestCriteriaExtractor_Boards(t *testing.T) {
	extractor := NewCriteriaExtractor()

	tests := []struct {
		message string
		want    string
	}{
		{"icse schools please", "ICSE"},
		{"igcse curriculum", "IGCSE"},
		{"IB schools in pune", "IB"},
		{"state board options", "State Board"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			criteria := extractor.Extract(tt.message)
			require.NotNil(t, criteria.Board)
			assert.Equal(t, tt.want, *criteria.Board)
		})
	}

	// "library" contains "ib" but must not trip the board matcher
	criteria := extractor.Extract("schools with a library")
	assert.Nil(t, criteria.Board)
}

func TestCriteriaExtractor_SchoolType(t *testing.T) {
	extractor := NewCriteriaExtractor()

	criteria := extractor.Extract("looking for a day school")
	require.NotNil(t, criteria.SchoolType)
	assert.Equal(t, "Day School", *criteria.SchoolType)

	criteria = extractor.Extract("boarding schools in Dehradun")
	require.NotNil(t, criteria.SchoolType)
	assert.Equal(t, "Boarding", *criteria.SchoolType)
}

func TestCriteriaExtractor_Idempotent(t *testing.T) {
	extractor := NewCriteriaExtractor()
	message := "CBSE day school in Pune under 80000 with library"

	first := extractor.Extract(message)
	second := extractor.Extract(message)
	assert.Equal(t, first, second)
}

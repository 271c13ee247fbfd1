package service

import (
	"regexp"
	"strconv"
	"strings"

	"pickmyschool/internal/model"
)

// CriteriaExtractor turns a free-text message into a structured
// criteria set. Extraction is pure and deterministic: fixed keyword
// vocabularies, first match wins within a category, every category
// evaluated independently.
type CriteriaExtractor struct{}

// NewCriteriaExtractor creates a new criteria extractor
func NewCriteriaExtractor() *CriteriaExtractor {
	return &CriteriaExtractor{}
}

// knownCities is the whitelist of recognized city names, stored in
// canonical title case
var knownCities = []string{
	"Mumbai",
	"Delhi",
	"Bangalore",
	"Pune",
	"Hyderabad",
	"Chennai",
	"Kolkata",
	"Ahmedabad",
	"Surat",
	"Vadodara",
	"Jaipur",
}

// boardPatterns maps word-bounded board keywords to canonical names.
// Word boundaries matter: a bare substring test for "ib" would fire on
// "library".
var boardPatterns = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\bcbse\b`), "CBSE"},
	{regexp.MustCompile(`(?i)\bicse\b`), "ICSE"},
	{regexp.MustCompile(`(?i)\bigcse\b`), "IGCSE"},
	{regexp.MustCompile(`(?i)\bib\b`), "IB"},
	{regexp.MustCompile(`(?i)\bstate\s+board\b`), "State Board"},
}

var (
	daySchoolRe = regexp.MustCompile(`(?i)\bday[\s-]school\b`)
	boardingRe  = regexp.MustCompile(`(?i)\bboarding\b|\bresidential\b`)
)

// Fee trigger words are disjoint between the two patterns so a single
// phrase can never set both a floor and a ceiling.
var (
	feeCeilingRe = regexp.MustCompile(`(?i)\b(?:under|below|less than|maximum|max)\s+(?:₹|rs\.?\s*|rupees\s*)?(\d[\d,]*)\s*(k|lakh)?\b`)
	feeFloorRe   = regexp.MustCompile(`(?i)\b(?:above|more than|minimum|min)\s+(?:₹|rs\.?\s*|rupees\s*)?(\d[\d,]*)\s*(k|lakh)?\b`)
)

// facilityPatterns maps facility keyword patterns to canonical facility
// names. Patterns are not mutually exclusive: every one that matches
// contributes its canonical name.
var facilityPatterns = []struct {
	re        *regexp.Regexp
	canonical string
}{
	{regexp.MustCompile(`(?i)\blibrary\b|\bbooks\b`), "Library"},
	{regexp.MustCompile(`(?i)\bswimming\b|\bpool\b`), "Swimming Pool"},
	{regexp.MustCompile(`(?i)\blabs?\b`), "Science Labs"},
	{regexp.MustCompile(`(?i)\bsports?\b|\bplayground\b`), "Sports"},
	{regexp.MustCompile(`(?i)\btransport\b|\bbus(?:es)?\b`), "Transport"},
	{regexp.MustCompile(`(?i)\bhostel\b`), "Hostel"},
	{regexp.MustCompile(`(?i)\bcafeteria\b|\bcanteen\b`), "Cafeteria"},
	{regexp.MustCompile(`(?i)\bsmart\s*(?:board|class)`), "Smart Classes"},
	{regexp.MustCompile(`(?i)\bwi-?fi\b`), "Wi-Fi"},
	{regexp.MustCompile(`(?i)\bauditorium\b`), "Auditorium"},
	{regexp.MustCompile(`(?i)\bmedical\b|\binfirmary\b`), "Medical Room"},
}

// Extract parses a message into a criteria set. Categories with no
// recognizable keyword stay unset.
func (e *CriteriaExtractor) Extract(message string) *model.CriteriaSet {
	criteria := &model.CriteriaSet{}
	lower := strings.ToLower(message)

	for _, city := range knownCities {
		if strings.Contains(lower, strings.ToLower(city)) {
			c := city
			criteria.City = &c
			break
		}
	}

	for _, bp := range boardPatterns {
		if bp.re.MatchString(message) {
			b := bp.canonical
			criteria.Board = &b
			break
		}
	}

	if daySchoolRe.MatchString(message) {
		t := "Day School"
		criteria.SchoolType = &t
	} else if boardingRe.MatchString(message) {
		t := "Boarding"
		criteria.SchoolType = &t
	}

	if m := feeCeilingRe.FindStringSubmatch(message); m != nil {
		if amount, ok := parseFeeAmount(m[1], m[2]); ok {
			criteria.FeesMax = &amount
		}
	}
	if m := feeFloorRe.FindStringSubmatch(message); m != nil {
		if amount, ok := parseFeeAmount(m[1], m[2]); ok {
			criteria.FeesMin = &amount
		}
	}

	for _, fp := range facilityPatterns {
		if fp.re.MatchString(message) {
			criteria.Facilities = append(criteria.Facilities, fp.canonical)
		}
	}

	return criteria
}

// parseFeeAmount converts a matched number with an optional k/lakh
// suffix into rupees
func parseFeeAmount(digits, suffix string) (int, bool) {
	value, err := strconv.Atoi(strings.ReplaceAll(digits, ",", ""))
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(suffix) {
	case "k":
		value *= 1000
	case "lakh":
		value *= 100000
	}
	return value, true
}

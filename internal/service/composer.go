package service

import (
	"fmt"
	"strings"

	"pickmyschool/internal/model"
)

// ResponseComposer renders the chat reply for a criteria set and its
// matched schools. Output is a pure template fill: no randomness, no
// I/O, fully determined by its inputs.
type ResponseComposer struct{}

// NewResponseComposer creates a new response composer
func NewResponseComposer() *ResponseComposer {
	return &ResponseComposer{}
}

// Compose builds the narrative reply for a result set
func (c *ResponseComposer) Compose(criteria *model.CriteriaSet, schools []model.School) string {
	if len(schools) == 0 {
		return c.composeNoMatches(criteria)
	}
	return c.composeMatches(criteria, schools)
}

func (c *ResponseComposer) composeNoMatches(criteria *model.CriteriaSet) string {
	msg := "Sorry, I couldn't find any schools matching your criteria."

	var suggestions []string
	if criteria.FeesMax != nil {
		suggestions = append(suggestions, "raising your budget")
	}
	if criteria.City != nil {
		suggestions = append(suggestions, "looking in nearby cities")
	}
	if len(criteria.Facilities) > 0 {
		suggestions = append(suggestions, "requesting fewer facilities")
	}

	if len(suggestions) > 0 {
		msg += " You could try " + strings.Join(suggestions, ", ") + "."
	}
	return msg
}

func (c *ResponseComposer) composeMatches(criteria *model.CriteriaSet, schools []model.School) string {
	var sb strings.Builder

	noun := "schools"
	if len(schools) == 1 {
		noun = "school"
	}
	sb.WriteString(fmt.Sprintf("I found %d %s matching your criteria", len(schools), noun))

	// Restate the active criteria in a fixed order
	var parts []string
	if criteria.Board != nil {
		parts = append(parts, *criteria.Board)
	}
	if criteria.City != nil {
		parts = append(parts, "in "+*criteria.City)
	}
	if criteria.SchoolType != nil {
		parts = append(parts, *criteria.SchoolType)
	}
	if criteria.FeesMax != nil {
		parts = append(parts, fmt.Sprintf("under ₹%d", *criteria.FeesMax))
	}
	if criteria.FeesMin != nil {
		parts = append(parts, fmt.Sprintf("above ₹%d", *criteria.FeesMin))
	}
	if len(criteria.Facilities) > 0 {
		parts = append(parts, "with "+strings.Join(criteria.Facilities, ", "))
	}
	if len(parts) > 0 {
		sb.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}

	names := make([]string, 0, 3)
	for i, school := range schools {
		if i == 3 {
			break
		}
		names = append(names, school.Name)
	}
	sb.WriteString(": " + strings.Join(names, ", "))

	if len(schools) > 3 {
		sb.WriteString(fmt.Sprintf(" and %d more", len(schools)-3))
	}
	sb.WriteString(".")

	return sb.String()
}

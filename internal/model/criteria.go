package model

// CriteriaSet represents structured search criteria extracted from a
// free-text message. Unset categories stay nil so downstream filtering
// skips them entirely.
type CriteriaSet struct {
	City       *string  `json:"city,omitempty"`
	Board      *string  `json:"board,omitempty"`
	SchoolType *string  `json:"school_type,omitempty"`
	FeesMin    *int     `json:"fees_min,omitempty"`
	FeesMax    *int     `json:"fees_max,omitempty"`
	Facilities []string `json:"facilities,omitempty"`
}

// IsEmpty reports whether no category was extracted
func (c *CriteriaSet) IsEmpty() bool {
	return c.City == nil &&
		c.Board == nil &&
		c.SchoolType == nil &&
		c.FeesMin == nil &&
		c.FeesMax == nil &&
		len(c.Facilities) == 0
}

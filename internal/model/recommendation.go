package model

// Recommendation pairs a school with its heuristic score and the
// human-readable reasons behind it
type Recommendation struct {
	School
	RecommendationScore   float64  `json:"recommendation_score"`
	RecommendationReasons []string `json:"recommendation_reasons"`
}

// RecommendationInputs describes what informed a scoring run
type RecommendationInputs struct {
	Enquiries    int  `json:"enquiries"`
	SavedSchools int  `json:"saved_schools"`
	Location     bool `json:"location"`
}

// RecommendationMetadata summarizes a scoring run
type RecommendationMetadata struct {
	UserCity             *string              `json:"user_city,omitempty"`
	TotalAnalyzed        int                  `json:"total_analyzed"`
	TotalRecommendations int                  `json:"total_recommendations"`
	BasedOn              RecommendationInputs `json:"based_on"`
}

// RecommendationsResponse is the recommendations endpoint payload
type RecommendationsResponse struct {
	Recommendations []Recommendation       `json:"recommendations"`
	Metadata        RecommendationMetadata `json:"metadata"`
}

package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"go.uber.org/zap"

	"pickmyschool/internal/model"
)

// Recommender scores the school catalog against a student's profile
// and enquiry history. Scoring is strictly additive across independent
// signals; the only non-deterministic step is the tie-breaking jitter,
// which is injected so tests can pin it to zero.
type Recommender struct {
	directory SchoolDirectory
	jitter    func() float64 // returns a value in [0, 5)
	logger    *zap.Logger
}

// NewRecommender creates a recommender. A nil jitter source falls back
// to the shared math/rand generator.
func NewRecommender(directory SchoolDirectory, jitter func() float64, logger *zap.Logger) *Recommender {
	if jitter == nil {
		jitter = func() float64 { return rand.Float64() * 5 }
	}
	return &Recommender{
		directory: directory,
		jitter:    jitter,
		logger:    logger,
	}
}

// inclusionThreshold is the minimum total score a candidate needs to
// surface in the ranking. Candidates at or below it, or with no
// reasons, are dropped silently.
const inclusionThreshold = 10

// Recommend produces up to limit scored, explained recommendations for
// the given student. Schools the student has already enquired about or
// saved are excluded before scoring.
func (r *Recommender) Recommend(ctx context.Context, user *model.User, limit int) (*model.RecommendationsResponse, error) {
	enquiredIDs, err := r.directory.EnquiredSchoolIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	catalog, err := r.directory.ListPublicSchools(ctx)
	if err != nil {
		return nil, err
	}

	excluded := make(map[int64]bool, len(enquiredIDs)+len(user.SavedSchoolIDs))
	for _, id := range enquiredIDs {
		excluded[id] = true
	}
	for _, id := range user.SavedSchoolIDs {
		excluded[id] = true
	}

	// Boards the student has shown interest in through past enquiries
	enquired := make(map[int64]bool, len(enquiredIDs))
	for _, id := range enquiredIDs {
		enquired[id] = true
	}
	preferredBoards := make(map[string]bool)
	for _, school := range catalog {
		if enquired[school.ID] {
			preferredBoards[school.Board] = true
		}
	}

	var recommendations []model.Recommendation
	for _, school := range catalog {
		if excluded[school.ID] {
			continue
		}

		score, reasons := r.score(user, preferredBoards, &school)
		score += r.jitter()

		if score <= inclusionThreshold || len(reasons) == 0 {
			continue
		}

		recommendations = append(recommendations, model.Recommendation{
			School:                school,
			RecommendationScore:   score,
			RecommendationReasons: reasons,
		})
	}

	// Descending by score; equal scores break by ascending school ID
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].RecommendationScore != recommendations[j].RecommendationScore {
			return recommendations[i].RecommendationScore > recommendations[j].RecommendationScore
		}
		return recommendations[i].ID < recommendations[j].ID
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	r.logger.Debug("scored recommendations",
		zap.String("user_id", user.ID),
		zap.Int("catalog", len(catalog)),
		zap.Int("returned", len(recommendations)))

	return &model.RecommendationsResponse{
		Recommendations: recommendations,
		Metadata: model.RecommendationMetadata{
			UserCity:             user.City,
			TotalAnalyzed:        len(catalog),
			TotalRecommendations: len(recommendations),
			BasedOn: model.RecommendationInputs{
				Enquiries:    len(enquiredIDs),
				SavedSchools: len(user.SavedSchoolIDs),
				Location:     user.City != nil && *user.City != "",
			},
		},
	}, nil
}

// score computes the deterministic part of a candidate's score along
// with its reason strings. Jitter is added by the caller.
func (r *Recommender) score(user *model.User, preferredBoards map[string]bool, school *model.School) (float64, []string) {
	var score float64
	var reasons []string

	// 1. Location match carries the highest weight
	userCity := ""
	if user.City != nil {
		userCity = *user.City
	}
	if userCity != "" && strings.EqualFold(school.City, userCity) {
		score += 40
		reasons = append(reasons, fmt.Sprintf("Located in your city (%s)", userCity))
	} else if userCity != "" && school.City != "" {
		score += 10
	}

	// 2. Rating, 6 points per star
	if school.Rating > 0 {
		score += school.Rating * 6
		if school.Rating >= 4.5 {
			reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f ⭐)", school.Rating))
		} else if school.Rating >= 4.0 {
			reasons = append(reasons, fmt.Sprintf("Well-rated (%.1f ⭐)", school.Rating))
		}
	}

	// 3. Review count as a popularity signal
	if school.ReviewCount > 0 {
		score += minFloat(float64(school.ReviewCount)/2, 10)
		if school.ReviewCount >= 10 {
			reasons = append(reasons, fmt.Sprintf("Popular choice (%d reviews)", school.ReviewCount))
		}
	}

	// 4. Profile views as a popularity signal
	if school.ProfileViews > 0 {
		score += minFloat(float64(school.ProfileViews)/100, 10)
	}

	// 5. Featured schools
	if school.Featured {
		score += 5
		reasons = append(reasons, "Featured school")
	}

	// 6. Board affinity from enquiry history
	if preferredBoards[school.Board] {
		score += 15
		reasons = append(reasons, fmt.Sprintf("Matches your preference (%s)", school.Board))
	}

	// 7. Fee affordability on the average of the fee band
	if school.FeesMin != nil && school.FeesMax != nil {
		avgFees := float64(*school.FeesMin+*school.FeesMax) / 2
		if avgFees < 100000 {
			score += 10
			reasons = append(reasons, "Budget-friendly")
		} else if avgFees < 200000 {
			score += 5
		}
	}

	// 8. Facility richness
	facilityCount := len(school.Facilities)
	if facilityCount >= 10 {
		score += 10
		reasons = append(reasons, fmt.Sprintf("Excellent facilities (%d+)", facilityCount))
	} else if facilityCount >= 5 {
		score += 5
		reasons = append(reasons, "Good facilities")
	}

	// 9. Virtual tour availability
	if school.HasVirtualTour() {
		score += 5
		reasons = append(reasons, "Virtual tour available")
	}

	// 10. International curriculum
	if school.IsInternational {
		score += 5
		reasons = append(reasons, "International curriculum")
	}

	// Profile completeness bonus, no reason attached
	if school.HasCompleteProfile() {
		score += 5
	}

	return score, reasons
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

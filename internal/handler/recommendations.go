package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pickmyschool/internal/service"
)

// RecommendationHandler handles recommendation requests
type RecommendationHandler struct {
	recommender  *service.Recommender
	defaultLimit int
	maxLimit     int
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommender *service.Recommender, defaultLimit, maxLimit int) *RecommendationHandler {
	return &RecommendationHandler{
		recommender:  recommender,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Recommendations handles GET /api/v1/recommendations.
// Students only; read-only.
func (h *RecommendationHandler) Recommendations(c *gin.Context) {
	user := currentUser(c)

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(c, http.StatusBadRequest, "Invalid limit", CodeValidation)
			return
		}
		limit = parsed
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	response, err := h.recommender.Recommend(c.Request.Context(), user, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate recommendations: "+err.Error(), CodeInternal)
		return
	}

	c.JSON(http.StatusOK, response)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pickmyschool/internal/model"
	"pickmyschool/internal/service"
)

// SchoolHandler handles plain directory reads and enquiry submissions
type SchoolHandler struct {
	schoolService *service.SchoolService
}

// NewSchoolHandler creates a new school handler
func NewSchoolHandler(schoolService *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// GetSchool handles GET /api/v1/schools/:id
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	schoolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid school ID", CodeValidation)
		return
	}

	school, err := h.schoolService.GetSchool(c.Request.Context(), schoolID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get school: "+err.Error(), CodeInternal)
		return
	}
	if school == nil {
		respondError(c, http.StatusNotFound, "School not found", CodeNotFound)
		return
	}

	c.JSON(http.StatusOK, school)
}

// Search handles GET /api/v1/schools with structured query parameters
func (h *SchoolHandler) Search(c *gin.Context) {
	criteria := &model.CriteriaSet{}

	if city := c.Query("city"); city != "" {
		criteria.City = &city
	}
	if board := c.Query("board"); board != "" {
		criteria.Board = &board
	}
	if schoolType := c.Query("school_type"); schoolType != "" {
		criteria.SchoolType = &schoolType
	}
	if raw := c.Query("fees_max"); raw != "" {
		feesMax, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid fees_max", CodeValidation)
			return
		}
		criteria.FeesMax = &feesMax
	}
	if raw := c.Query("fees_min"); raw != "" {
		feesMin, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid fees_min", CodeValidation)
			return
		}
		criteria.FeesMin = &feesMin
	}
	if facilities := c.QueryArray("facility"); len(facilities) > 0 {
		criteria.Facilities = facilities
	}

	schools, err := h.schoolService.Search(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Search failed: "+err.Error(), CodeInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schools": schools, "total": len(schools)})
}

// SubmitEnquiry handles POST /api/v1/enquiries. Students only.
func (h *SchoolHandler) SubmitEnquiry(c *gin.Context) {
	user := currentUser(c)

	var req model.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error(), CodeValidation)
		return
	}

	school, err := h.schoolService.GetSchool(c.Request.Context(), req.SchoolID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to submit enquiry: "+err.Error(), CodeInternal)
		return
	}
	if school == nil {
		respondError(c, http.StatusNotFound, "School not found", CodeNotFound)
		return
	}

	enquiry, err := h.schoolService.SubmitEnquiry(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to submit enquiry: "+err.Error(), CodeInternal)
		return
	}

	c.JSON(http.StatusCreated, enquiry)
}

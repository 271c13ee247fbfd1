package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickmyschool/internal/model"
	"pickmyschool/internal/service"
)

func schoolTestRouter(dir *stubDirectory, resolver UserResolver) *gin.Engine {
	h := NewSchoolHandler(service.NewSchoolService(dir, 10))

	router := gin.New()
	router.GET("/api/v1/schools", h.Search)
	router.GET("/api/v1/schools/:id", h.GetSchool)
	router.POST("/api/v1/enquiries",
		RequireAuth(resolver), RequireRole(model.RoleStudent), h.SubmitEnquiry)
	return router
}

func TestGetSchool_InvalidID(t *testing.T) {
	router := schoolTestRouter(&stubDirectory{}, &stubResolver{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schools/abc", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidation, decodeBody(t, rec)["code"])
}

func TestGetSchool_NotFound(t *testing.T) {
	router := schoolTestRouter(&stubDirectory{}, &stubResolver{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schools/42", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, CodeNotFound, body["code"])
	assert.Equal(t, "School not found", body["error"])
}

func TestGetSchool_Found(t *testing.T) {
	dir := &stubDirectory{schools: []model.School{
		{ID: 42, Name: "Orbit World School", Board: "CBSE", City: "Delhi", IsPublic: true},
	}}
	router := schoolTestRouter(dir, &stubResolver{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schools/42", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Orbit World School", body["name"])
}

func TestSearchSchools_FiltersByQueryParams(t *testing.T) {
	dir := &stubDirectory{schools: []model.School{
		{ID: 1, Name: "Orbit World School", Board: "CBSE", City: "Delhi", IsPublic: true},
		{ID: 2, Name: "Lotus Academy", Board: "ICSE", City: "Delhi", IsPublic: true},
		{ID: 3, Name: "Riverdale High", Board: "CBSE", City: "Mumbai", IsPublic: true},
	}}
	router := schoolTestRouter(dir, &stubResolver{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schools?city=Delhi&board=CBSE", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	schools, ok := body["schools"].([]interface{})
	require.True(t, ok)
	require.Len(t, schools, 1)
}

func TestSearchSchools_InvalidFees(t *testing.T) {
	router := schoolTestRouter(&stubDirectory{}, &stubResolver{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schools?fees_max=cheap", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid fees_max", decodeBody(t, rec)["error"])
}

func TestSearchSchools_FacilityFilter(t *testing.T) {
	dir := &stubDirectory{schools: []model.School{
		{ID: 1, Name: "With Pool", City: "Pune", IsPublic: true,
			Facilities: model.JSONArray{"Swimming Pool (Olympic)"}},
		{ID: 2, Name: "Without Pool", City: "Pune", IsPublic: true,
			Facilities: model.JSONArray{"Library"}},
	}}
	router := schoolTestRouter(dir, &stubResolver{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/schools?facility=Swimming+Pool", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
}

func TestSubmitEnquiry_UnknownSchool(t *testing.T) {
	resolver := &stubResolver{users: map[string]*model.User{
		"tok-1": {ID: "u1", Role: model.RoleStudent},
	}}
	router := schoolTestRouter(&stubDirectory{}, resolver)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/enquiries",
		model.EnquiryRequest{SchoolID: 99, Message: "hi"}, bearer("tok-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decodeBody(t, rec)["code"])
}

func TestSubmitEnquiry_Created(t *testing.T) {
	dir := &stubDirectory{schools: []model.School{
		{ID: 7, Name: "Orbit World School", IsPublic: true},
	}}
	resolver := &stubResolver{users: map[string]*model.User{
		"tok-1": {ID: "u1", Role: model.RoleStudent},
	}}
	router := schoolTestRouter(dir, resolver)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/enquiries",
		model.EnquiryRequest{SchoolID: 7, Message: "Fee structure please"}, bearer("tok-1"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["school_id"])
	assert.Equal(t, "u1", body["student_id"])

	require.Len(t, dir.enquiries, 1)
	assert.Equal(t, int64(7), dir.enquiries[0].SchoolID)
}

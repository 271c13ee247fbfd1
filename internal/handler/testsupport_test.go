package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pickmyschool/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubResolver maps bearer tokens to users
type stubResolver struct {
	users map[string]*model.User
	err   error
}

func (r *stubResolver) GetUserByToken(_ context.Context, token string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[token], nil
}

// stubDirectory is an in-memory relational backend for handler tests
type stubDirectory struct {
	schools   []model.School
	enquiries []*model.Enquiry
}

func (d *stubDirectory) SearchWithCriteria(_ context.Context, criteria *model.CriteriaSet, limit int) ([]model.School, error) {
	var out []model.School
	for _, s := range d.schools {
		if !s.IsPublic {
			continue
		}
		if criteria != nil && criteria.City != nil && s.City != *criteria.City {
			continue
		}
		if criteria != nil && criteria.Board != nil && s.Board != *criteria.Board {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (d *stubDirectory) GetSchoolByID(_ context.Context, schoolID int64) (*model.School, error) {
	for i := range d.schools {
		if d.schools[i].ID == schoolID {
			return &d.schools[i], nil
		}
	}
	return nil, nil
}

func (d *stubDirectory) ListPublicSchools(_ context.Context) ([]model.School, error) {
	var out []model.School
	for _, s := range d.schools {
		if s.IsPublic {
			out = append(out, s)
		}
	}
	return out, nil
}

func (d *stubDirectory) GetUserByID(_ context.Context, _ string) (*model.User, error) {
	return nil, nil
}

func (d *stubDirectory) EnquiredSchoolIDs(_ context.Context, studentID string) ([]int64, error) {
	var ids []int64
	for _, e := range d.enquiries {
		if e.StudentID == studentID {
			ids = append(ids, e.SchoolID)
		}
	}
	return ids, nil
}

func (d *stubDirectory) CreateEnquiry(_ context.Context, enquiry *model.Enquiry) error {
	enquiry.ID = int64(len(d.enquiries) + 1)
	enquiry.CreatedAt = time.Now().UTC()
	d.enquiries = append(d.enquiries, enquiry)
	return nil
}

// stubConversations is an in-memory conversation log for handler tests
type stubConversations struct {
	conversations map[string]*model.Conversation
}

func newStubConversations() *stubConversations {
	return &stubConversations{conversations: map[string]*model.Conversation{}}
}

func (s *stubConversations) Get(_ context.Context, userID string) (*model.Conversation, error) {
	return s.conversations[userID], nil
}

func (s *stubConversations) Append(_ context.Context, userID string, turns ...model.Turn) (*model.Conversation, error) {
	conv := s.conversations[userID]
	if conv == nil {
		conv = &model.Conversation{ID: "conv-" + userID, UserID: userID}
		s.conversations[userID] = conv
	}
	conv.Turns = append(conv.Turns, turns...)
	return conv, nil
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

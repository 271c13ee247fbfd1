package service

import (
	"context"

	"pickmyschool/internal/model"
	"pickmyschool/internal/utils"
)

// SchoolService exposes plain directory reads and enquiry writes
type SchoolService struct {
	directory SchoolDirectory
	pageSize  int
}

// NewSchoolService creates a new school service
func NewSchoolService(directory SchoolDirectory, pageSize int) *SchoolService {
	return &SchoolService{directory: directory, pageSize: pageSize}
}

// GetSchool retrieves a single public school, nil if not found
func (s *SchoolService) GetSchool(ctx context.Context, schoolID int64) (*model.School, error) {
	return s.directory.GetSchoolByID(ctx, schoolID)
}

// Search runs the same query builder the chat pipeline uses, for
// callers that already hold structured criteria
func (s *SchoolService) Search(ctx context.Context, criteria *model.CriteriaSet) ([]model.School, error) {
	schools, err := s.directory.SearchWithCriteria(ctx, criteria, s.pageSize)
	if err != nil {
		return nil, err
	}

	if len(criteria.Facilities) > 0 {
		filtered := schools[:0]
		for _, school := range schools {
			if utils.HasAllFacilities(criteria.Facilities, school.Facilities) {
				filtered = append(filtered, school)
			}
		}
		schools = filtered
	}
	return schools, nil
}

// SubmitEnquiry records a student's enquiry against a school
func (s *SchoolService) SubmitEnquiry(ctx context.Context, studentID string, req *model.EnquiryRequest) (*model.Enquiry, error) {
	enquiry := &model.Enquiry{
		StudentID: studentID,
		SchoolID:  req.SchoolID,
		Message:   req.Message,
	}
	if err := s.directory.CreateEnquiry(ctx, enquiry); err != nil {
		return nil, err
	}
	return enquiry, nil
}

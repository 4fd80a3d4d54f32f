package service

import (
	"context"
	"errors"
	"time"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, lessonID uint, input dto.CreateAssignmentInput) (*dto.AssignmentResponse, error)
	GetAssignment(ctx context.Context, id uint) (*dto.AssignmentResponse, error)
	GetLessonAssignments(ctx context.Context, lessonID uint) ([]dto.AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, id uint, input dto.UpdateAssignmentInput) (*dto.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id uint) error

	AttachResource(ctx context.Context, assignmentID uint, input dto.AttachResourceInput) error
	GetResources(ctx context.Context, assignmentID uint) ([]dto.DocumentResponse, error)

	Submit(ctx context.Context, assignmentID, studentID, documentID uint) (*dto.SubmissionResponse, error)
	GetSubmissions(ctx context.Context, assignmentID uint) ([]dto.SubmissionResponse, error)
}

type assignmentService struct {
	repo         repository.AssignmentRepository
	lessonRepo   repository.LessonRepository
	studentRepo  repository.StudentRepository
	documentRepo repository.DocumentRepository
}

func NewAssignmentService(
	repo repository.AssignmentRepository,
	lessonRepo repository.LessonRepository,
	studentRepo repository.StudentRepository,
	documentRepo repository.DocumentRepository,
) AssignmentService {
	return &assignmentService{
		repo:         repo,
		lessonRepo:   lessonRepo,
		studentRepo:  studentRepo,
		documentRepo: documentRepo,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, lessonID uint, input dto.CreateAssignmentInput) (*dto.AssignmentResponse, error) {
	if _, err := s.lessonRepo.FindByID(ctx, lessonID); err != nil {
		return nil, found("lesson", err)
	}

	if _, err := s.repo.FindByName(ctx, lessonID, input.Name); err == nil {
		return nil, apperror.Conflict("assignment with this name already exists in this lesson")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("create assignment", err)
	}

	assignment := &model.LessonAssignment{
		LessonID:        lessonID,
		Name:            input.Name,
		Task:            input.Task,
		AllowSubmission: input.AllowSubmission,
		DueDate:         input.DueDate,
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, apperror.Database("create assignment", err)
	}

	resp := assignmentToResponse(assignment)
	return &resp, nil
}

func (s *assignmentService) GetAssignment(ctx context.Context, id uint) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("assignment", err)
	}

	resp := assignmentToResponse(assignment)
	return &resp, nil
}

func (s *assignmentService) GetLessonAssignments(ctx context.Context, lessonID uint) ([]dto.AssignmentResponse, error) {
	if _, err := s.lessonRepo.FindByID(ctx, lessonID); err != nil {
		return nil, found("lesson", err)
	}

	assignments, err := s.repo.FindByLesson(ctx, lessonID)
	if err != nil {
		return nil, apperror.Database("list assignments", err)
	}
	if len(assignments) == 0 {
		return nil, apperror.EmptyList("assignments")
	}

	responses := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, assignmentToResponse(assignment))
	}

	return responses, nil
}

// UpdateAssignment rejects a name already used by a different assignment in
// the same lesson; renaming an assignment to its own name is fine.
func (s *assignmentService) UpdateAssignment(ctx context.Context, id uint, input dto.UpdateAssignmentInput) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("assignment", err)
	}

	if existing, err := s.repo.FindByName(ctx, assignment.LessonID, input.Name); err == nil {
		if existing.ID != assignment.ID {
			return nil, apperror.Conflict("assignment with this name already exists in this lesson")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("update assignment", err)
	}

	assignment.Name = input.Name
	assignment.Task = input.Task
	assignment.AllowSubmission = input.AllowSubmission
	assignment.DueDate = input.DueDate

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, apperror.Database("update assignment", err)
	}

	resp := assignmentToResponse(assignment)
	return &resp, nil
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return found("assignment", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Database("delete assignment", err)
	}

	return nil
}

func (s *assignmentService) AttachResource(ctx context.Context, assignmentID uint, input dto.AttachResourceInput) error {
	if _, err := s.repo.FindByID(ctx, assignmentID); err != nil {
		return found("assignment", err)
	}

	if _, err := s.documentRepo.FindByID(ctx, input.DocumentID); err != nil {
		return found("document", err)
	}

	resource := &model.AssignmentResource{AssignmentID: assignmentID, DocumentID: input.DocumentID}
	if err := s.repo.AddResource(ctx, resource); err != nil {
		return apperror.Database("attach assignment resource", err)
	}

	return nil
}

func (s *assignmentService) GetResources(ctx context.Context, assignmentID uint) ([]dto.DocumentResponse, error) {
	if _, err := s.repo.FindByID(ctx, assignmentID); err != nil {
		return nil, found("assignment", err)
	}

	resources, err := s.repo.ResourcesByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, apperror.Database("list assignment resources", err)
	}
	if len(resources) == 0 {
		return nil, apperror.EmptyList("assignment resources")
	}

	responses := make([]dto.DocumentResponse, 0, len(resources))
	for _, resource := range resources {
		responses = append(responses, dto.DocumentResponse{
			ID:        resource.Document.ID,
			Name:      resource.Document.Name,
			Extension: resource.Document.Extension,
		})
	}

	return responses, nil
}

// Submit records a student's uploaded document against an assignment. Each
// student submits once per assignment; each document backs one submission.
func (s *assignmentService) Submit(ctx context.Context, assignmentID, studentID, documentID uint) (*dto.SubmissionResponse, error) {
	assignment, err := s.repo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, found("assignment", err)
	}

	if !assignment.AllowSubmission {
		return nil, apperror.ValidationField("general", "assignment does not accept submissions")
	}

	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		return nil, found("student", err)
	}

	if _, err := s.documentRepo.FindByID(ctx, documentID); err != nil {
		return nil, found("document", err)
	}

	if _, err := s.repo.SubmissionByStudent(ctx, assignmentID, studentID); err == nil {
		return nil, apperror.Conflict("submission already exists for this assignment")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("submit assignment", err)
	}

	submission := &model.Submission{
		StudentID:      studentID,
		AssignmentID:   assignmentID,
		DocumentID:     documentID,
		SubmissionDate: time.Now(),
	}

	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, apperror.Database("submit assignment", err)
	}

	created, err := s.repo.SubmissionByID(ctx, submission.ID)
	if err != nil {
		return nil, apperror.Database("load submission", err)
	}

	resp := submissionToResponse(created)
	return &resp, nil
}

func (s *assignmentService) GetSubmissions(ctx context.Context, assignmentID uint) ([]dto.SubmissionResponse, error) {
	if _, err := s.repo.FindByID(ctx, assignmentID); err != nil {
		return nil, found("assignment", err)
	}

	submissions, err := s.repo.SubmissionsByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, apperror.Database("list submissions", err)
	}
	if len(submissions) == 0 {
		return nil, apperror.EmptyList("submissions")
	}

	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, submissionToResponse(submission))
	}

	return responses, nil
}

func assignmentToResponse(assignment *model.LessonAssignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:              assignment.ID,
		LessonID:        assignment.LessonID,
		Name:            assignment.Name,
		Task:            assignment.Task,
		AllowSubmission: assignment.AllowSubmission,
		DueDate:         assignment.DueDate,
	}
}

func submissionToResponse(submission *model.Submission) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:             submission.ID,
		AssignmentID:   submission.AssignmentID,
		StudentID:      submission.StudentID,
		Student:        submission.Student.User.FirstName + " " + submission.Student.User.LastName,
		DocumentID:     submission.DocumentID,
		DocumentName:   submission.Document.Name,
		SubmissionDate: submission.SubmissionDate,
	}
}

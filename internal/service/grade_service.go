package service

import (
	"context"
	"errors"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
)

type GradeService interface {
	GradeStudent(ctx context.Context, input dto.GradeInput) (*dto.GradeResponse, error)
	GetAssignmentGrades(ctx context.Context, assignmentID uint) ([]dto.GradeResponse, error)
	GetStudentGrades(ctx context.Context, studentID uint) ([]dto.GradeResponse, error)
}

type gradeService struct {
	repo           repository.GradeRepository
	assignmentRepo repository.AssignmentRepository
	studentRepo    repository.StudentRepository
}

func NewGradeService(repo repository.GradeRepository, assignmentRepo repository.AssignmentRepository, studentRepo repository.StudentRepository) GradeService {
	return &gradeService{repo: repo, assignmentRepo: assignmentRepo, studentRepo: studentRepo}
}

// GradeStudent upserts by the (assignment, student) natural key: grading the
// same student twice overwrites the value instead of adding a row.
func (s *gradeService) GradeStudent(ctx context.Context, input dto.GradeInput) (*dto.GradeResponse, error) {
	if _, err := s.assignmentRepo.FindByID(ctx, input.AssignmentID); err != nil {
		return nil, found("assignment", err)
	}

	if _, err := s.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, found("student", err)
	}

	grade, err := s.repo.FindByNaturalKey(ctx, input.AssignmentID, input.StudentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Database("grade student", err)
		}
		grade = &model.Grade{
			AssignmentID: input.AssignmentID,
			StudentID:    input.StudentID,
		}
	}

	grade.Value = input.Value
	grade.TeacherName = input.TeacherName

	if err := s.repo.Save(ctx, grade); err != nil {
		return nil, apperror.Database("grade student", err)
	}

	return &dto.GradeResponse{
		ID:           grade.ID,
		AssignmentID: grade.AssignmentID,
		StudentID:    grade.StudentID,
		Value:        grade.Value,
		TeacherName:  grade.TeacherName,
	}, nil
}

func (s *gradeService) GetAssignmentGrades(ctx context.Context, assignmentID uint) ([]dto.GradeResponse, error) {
	if _, err := s.assignmentRepo.FindByID(ctx, assignmentID); err != nil {
		return nil, found("assignment", err)
	}

	grades, err := s.repo.FindByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, apperror.Database("list grades", err)
	}
	if len(grades) == 0 {
		return nil, apperror.EmptyList("grades")
	}

	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, gradeToResponse(grade))
	}

	return responses, nil
}

func (s *gradeService) GetStudentGrades(ctx context.Context, studentID uint) ([]dto.GradeResponse, error) {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		return nil, found("student", err)
	}

	grades, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, apperror.Database("list grades", err)
	}
	if len(grades) == 0 {
		return nil, apperror.EmptyList("grades")
	}

	responses := make([]dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, gradeToResponse(grade))
	}

	return responses, nil
}

func gradeToResponse(grade *model.Grade) dto.GradeResponse {
	return dto.GradeResponse{
		ID:           grade.ID,
		AssignmentID: grade.AssignmentID,
		StudentID:    grade.StudentID,
		Student:      grade.Student.User.FirstName + " " + grade.Student.User.LastName,
		Value:        grade.Value,
		TeacherName:  grade.TeacherName,
	}
}

package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.LessonAssignment) error
	FindByID(ctx context.Context, id uint) (*model.LessonAssignment, error)
	FindByLesson(ctx context.Context, lessonID uint) ([]*model.LessonAssignment, error)
	FindByName(ctx context.Context, lessonID uint, name string) (*model.LessonAssignment, error)
	Update(ctx context.Context, assignment *model.LessonAssignment) error
	Delete(ctx context.Context, id uint) error

	AddResource(ctx context.Context, resource *model.AssignmentResource) error
	ResourcesByAssignment(ctx context.Context, assignmentID uint) ([]*model.AssignmentResource, error)

	CreateSubmission(ctx context.Context, submission *model.Submission) error
	SubmissionByID(ctx context.Context, id uint) (*model.Submission, error)
	SubmissionsByAssignment(ctx context.Context, assignmentID uint) ([]*model.Submission, error)
	SubmissionByStudent(ctx context.Context, assignmentID, studentID uint) (*model.Submission, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.LessonAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) FindByID(ctx context.Context, id uint) (*model.LessonAssignment, error) {
	var assignment model.LessonAssignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return nil, err
	}

	return &assignment, nil
}

func (r *assignmentRepository) FindByLesson(ctx context.Context, lessonID uint) ([]*model.LessonAssignment, error) {
	var assignments []*model.LessonAssignment
	if err := r.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) FindByName(ctx context.Context, lessonID uint, name string) (*model.LessonAssignment, error) {
	var assignment model.LessonAssignment
	if err := r.db.WithContext(ctx).
		Where("lesson_id = ? AND name = ?", lessonID, name).
		First(&assignment).Error; err != nil {
		return nil, err
	}

	return &assignment, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *model.LessonAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.LessonAssignment{}, id).Error
}

func (r *assignmentRepository) AddResource(ctx context.Context, resource *model.AssignmentResource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *assignmentRepository) ResourcesByAssignment(ctx context.Context, assignmentID uint) ([]*model.AssignmentResource, error) {
	var resources []*model.AssignmentResource
	if err := r.db.WithContext(ctx).
		Preload("Document").
		Where("assignment_id = ?", assignmentID).
		Find(&resources).Error; err != nil {
		return nil, err
	}

	return resources, nil
}

func (r *assignmentRepository) CreateSubmission(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *assignmentRepository) SubmissionByID(ctx context.Context, id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.WithContext(ctx).
		Preload("Student.User").
		Preload("Document").
		First(&submission, id).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

func (r *assignmentRepository) SubmissionsByAssignment(ctx context.Context, assignmentID uint) ([]*model.Submission, error) {
	var submissions []*model.Submission
	if err := r.db.WithContext(ctx).
		Preload("Student.User").
		Preload("Document").
		Where("assignment_id = ?", assignmentID).
		Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

func (r *assignmentRepository) SubmissionByStudent(ctx context.Context, assignmentID, studentID uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.WithContext(ctx).
		Preload("Document").
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}

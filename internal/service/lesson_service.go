package service

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
)

type LessonService interface {
	CreateLesson(ctx context.Context, courseID uint, input dto.CreateLessonInput) (*model.CourseLesson, error)
	GetLesson(ctx context.Context, id uint) (*model.CourseLesson, error)
	GetCourseLessons(ctx context.Context, courseID uint) ([]*model.CourseLesson, error)
	UpdateLesson(ctx context.Context, id uint, input dto.UpdateLessonInput) (*model.CourseLesson, error)
	DeleteLesson(ctx context.Context, id uint) error

	AttachResource(ctx context.Context, lessonID uint, input dto.AttachResourceInput) error
	GetResources(ctx context.Context, lessonID uint) ([]dto.DocumentResponse, error)
}

type lessonService struct {
	repo         repository.LessonRepository
	courseRepo   repository.CourseRepository
	documentRepo repository.DocumentRepository
}

func NewLessonService(repo repository.LessonRepository, courseRepo repository.CourseRepository, documentRepo repository.DocumentRepository) LessonService {
	return &lessonService{repo: repo, courseRepo: courseRepo, documentRepo: documentRepo}
}

func (s *lessonService) CreateLesson(ctx context.Context, courseID uint, input dto.CreateLessonInput) (*model.CourseLesson, error) {
	if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
		return nil, found("course", err)
	}

	lesson := &model.CourseLesson{CourseID: courseID, Name: input.Name}
	if err := s.repo.Create(ctx, lesson); err != nil {
		return nil, apperror.Database("create lesson", err)
	}

	return lesson, nil
}

func (s *lessonService) GetLesson(ctx context.Context, id uint) (*model.CourseLesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("lesson", err)
	}

	return lesson, nil
}

func (s *lessonService) GetCourseLessons(ctx context.Context, courseID uint) ([]*model.CourseLesson, error) {
	if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
		return nil, found("course", err)
	}

	lessons, err := s.repo.FindByCourse(ctx, courseID)
	if err != nil {
		return nil, apperror.Database("list lessons", err)
	}
	if len(lessons) == 0 {
		return nil, apperror.EmptyList("lessons")
	}

	return lessons, nil
}

func (s *lessonService) UpdateLesson(ctx context.Context, id uint, input dto.UpdateLessonInput) (*model.CourseLesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("lesson", err)
	}

	lesson.Name = input.Name
	if err := s.repo.Update(ctx, lesson); err != nil {
		return nil, apperror.Database("update lesson", err)
	}

	return lesson, nil
}

func (s *lessonService) DeleteLesson(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return found("lesson", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Database("delete lesson", err)
	}

	return nil
}

func (s *lessonService) AttachResource(ctx context.Context, lessonID uint, input dto.AttachResourceInput) error {
	if _, err := s.repo.FindByID(ctx, lessonID); err != nil {
		return found("lesson", err)
	}

	if _, err := s.documentRepo.FindByID(ctx, input.DocumentID); err != nil {
		return found("document", err)
	}

	resource := &model.LessonResource{LessonID: lessonID, DocumentID: input.DocumentID}
	if err := s.repo.AddResource(ctx, resource); err != nil {
		return apperror.Database("attach lesson resource", err)
	}

	return nil
}

func (s *lessonService) GetResources(ctx context.Context, lessonID uint) ([]dto.DocumentResponse, error) {
	if _, err := s.repo.FindByID(ctx, lessonID); err != nil {
		return nil, found("lesson", err)
	}

	resources, err := s.repo.ResourcesByLesson(ctx, lessonID)
	if err != nil {
		return nil, apperror.Database("list lesson resources", err)
	}
	if len(resources) == 0 {
		return nil, apperror.EmptyList("lesson resources")
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

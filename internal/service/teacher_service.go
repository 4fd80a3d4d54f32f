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

type TeacherService interface {
	CreateTeacher(ctx context.Context, input dto.CreateTeacherInput) (*dto.TeacherResponse, error)
	GetTeacher(ctx context.Context, id uint) (*dto.TeacherResponse, error)
	GetAllTeachers(ctx context.Context) ([]dto.TeacherResponse, error)
	UpdateTeacher(ctx context.Context, id uint, input dto.UpdateTeacherInput) (*dto.TeacherResponse, error)
	DeleteTeacher(ctx context.Context, id uint) error
}

type teacherService struct {
	repo     repository.TeacherRepository
	userRepo repository.UserRepository
	catalog  repository.CatalogRepository
}

func NewTeacherService(repo repository.TeacherRepository, userRepo repository.UserRepository, catalog repository.CatalogRepository) TeacherService {
	return &teacherService{repo: repo, userRepo: userRepo, catalog: catalog}
}

func (s *teacherService) CreateTeacher(ctx context.Context, input dto.CreateTeacherInput) (*dto.TeacherResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, found("user", err)
	}

	if _, err := s.repo.FindByUserID(ctx, input.UserID); err == nil {
		return nil, apperror.Conflict("teacher profile already exists for this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("create teacher", err)
	}

	if _, err := s.catalog.UniversityByID(ctx, input.UniversityID); err != nil {
		return nil, found("university", err)
	}

	teacher := &model.Teacher{
		UserID:       input.UserID,
		UniversityID: input.UniversityID,
	}

	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, apperror.Database("create teacher", err)
	}

	return s.GetTeacher(ctx, teacher.ID)
}

func (s *teacherService) GetTeacher(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("teacher", err)
	}

	resp := teacherToResponse(teacher)
	return &resp, nil
}

func (s *teacherService) GetAllTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Database("list teachers", err)
	}
	if len(teachers) == 0 {
		return nil, apperror.EmptyList("teachers")
	}

	responses := make([]dto.TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, teacherToResponse(teacher))
	}

	return responses, nil
}

func (s *teacherService) UpdateTeacher(ctx context.Context, id uint, input dto.UpdateTeacherInput) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("teacher", err)
	}

	if _, err := s.catalog.UniversityByID(ctx, input.UniversityID); err != nil {
		return nil, found("university", err)
	}

	teacher.UniversityID = input.UniversityID

	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, apperror.Database("update teacher", err)
	}

	return s.GetTeacher(ctx, teacher.ID)
}

func (s *teacherService) DeleteTeacher(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return found("teacher", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Database("delete teacher", err)
	}

	return nil
}

func teacherToResponse(teacher *model.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:         teacher.ID,
		UserID:     teacher.UserID,
		FirstName:  teacher.User.FirstName,
		LastName:   teacher.User.LastName,
		University: teacher.University.Name,
	}
}

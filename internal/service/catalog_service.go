package service

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
)

// CatalogService exposes the read-only institutional hierarchy.
type CatalogService interface {
	GetUniversities(ctx context.Context) ([]*model.University, error)
	GetFaculties(ctx context.Context, universityID uint) ([]*model.Faculty, error)
	GetDepartments(ctx context.Context, facultyID uint) ([]*model.Department, error)
	GetSpecialties(ctx context.Context, facultyID uint) ([]*model.Specialty, error)
	GetDisciplines(ctx context.Context) ([]*model.Discipline, error)
	GetGroups(ctx context.Context) ([]*model.Group, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetUniversities(ctx context.Context) ([]*model.University, error) {
	universities, err := s.repo.Universities(ctx)
	if err != nil {
		return nil, apperror.Database("list universities", err)
	}
	if len(universities) == 0 {
		return nil, apperror.EmptyList("universities")
	}
	return universities, nil
}

func (s *catalogService) GetFaculties(ctx context.Context, universityID uint) ([]*model.Faculty, error) {
	if _, err := s.repo.UniversityByID(ctx, universityID); err != nil {
		return nil, found("university", err)
	}

	faculties, err := s.repo.Faculties(ctx, universityID)
	if err != nil {
		return nil, apperror.Database("list faculties", err)
	}
	if len(faculties) == 0 {
		return nil, apperror.EmptyList("faculties")
	}
	return faculties, nil
}

func (s *catalogService) GetDepartments(ctx context.Context, facultyID uint) ([]*model.Department, error) {
	if _, err := s.repo.FacultyByID(ctx, facultyID); err != nil {
		return nil, found("faculty", err)
	}

	departments, err := s.repo.Departments(ctx, facultyID)
	if err != nil {
		return nil, apperror.Database("list departments", err)
	}
	if len(departments) == 0 {
		return nil, apperror.EmptyList("departments")
	}
	return departments, nil
}

func (s *catalogService) GetSpecialties(ctx context.Context, facultyID uint) ([]*model.Specialty, error) {
	if _, err := s.repo.FacultyByID(ctx, facultyID); err != nil {
		return nil, found("faculty", err)
	}

	specialties, err := s.repo.Specialties(ctx, facultyID)
	if err != nil {
		return nil, apperror.Database("list specialties", err)
	}
	if len(specialties) == 0 {
		return nil, apperror.EmptyList("specialties")
	}
	return specialties, nil
}

func (s *catalogService) GetDisciplines(ctx context.Context) ([]*model.Discipline, error) {
	disciplines, err := s.repo.Disciplines(ctx)
	if err != nil {
		return nil, apperror.Database("list disciplines", err)
	}
	if len(disciplines) == 0 {
		return nil, apperror.EmptyList("disciplines")
	}
	return disciplines, nil
}

func (s *catalogService) GetGroups(ctx context.Context) ([]*model.Group, error) {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, apperror.Database("list groups", err)
	}
	if len(groups) == 0 {
		return nil, apperror.EmptyList("groups")
	}
	return groups, nil
}

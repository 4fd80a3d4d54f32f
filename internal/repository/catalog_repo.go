package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

// CatalogRepository serves the read-only institutional hierarchy:
// University → Faculty → {Department, Specialty}, plus Disciplines and Groups.
type CatalogRepository interface {
	Universities(ctx context.Context) ([]*model.University, error)
	UniversityByID(ctx context.Context, id uint) (*model.University, error)
	Faculties(ctx context.Context, universityID uint) ([]*model.Faculty, error)
	FacultyByID(ctx context.Context, id uint) (*model.Faculty, error)
	Departments(ctx context.Context, facultyID uint) ([]*model.Department, error)
	DepartmentByID(ctx context.Context, id uint) (*model.Department, error)
	Specialties(ctx context.Context, facultyID uint) ([]*model.Specialty, error)
	SpecialtyByID(ctx context.Context, id uint) (*model.Specialty, error)
	Disciplines(ctx context.Context) ([]*model.Discipline, error)
	DisciplineByID(ctx context.Context, id uint) (*model.Discipline, error)
	Groups(ctx context.Context) ([]*model.Group, error)
	GroupByID(ctx context.Context, id uint) (*model.Group, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Universities(ctx context.Context) ([]*model.University, error) {
	var universities []*model.University
	if err := r.db.WithContext(ctx).Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

func (r *catalogRepository) UniversityByID(ctx context.Context, id uint) (*model.University, error) {
	var university model.University
	if err := r.db.WithContext(ctx).First(&university, id).Error; err != nil {
		return nil, err
	}
	return &university, nil
}

func (r *catalogRepository) Faculties(ctx context.Context, universityID uint) ([]*model.Faculty, error) {
	var faculties []*model.Faculty
	if err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Find(&faculties).Error; err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *catalogRepository) FacultyByID(ctx context.Context, id uint) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, id).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *catalogRepository) Departments(ctx context.Context, facultyID uint) ([]*model.Department, error) {
	var departments []*model.Department
	if err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *catalogRepository) DepartmentByID(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *catalogRepository) Specialties(ctx context.Context, facultyID uint) ([]*model.Specialty, error) {
	var specialties []*model.Specialty
	if err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *catalogRepository) SpecialtyByID(ctx context.Context, id uint) (*model.Specialty, error) {
	var specialty model.Specialty
	if err := r.db.WithContext(ctx).First(&specialty, id).Error; err != nil {
		return nil, err
	}
	return &specialty, nil
}

func (r *catalogRepository) Disciplines(ctx context.Context) ([]*model.Discipline, error) {
	var disciplines []*model.Discipline
	if err := r.db.WithContext(ctx).Find(&disciplines).Error; err != nil {
		return nil, err
	}
	return disciplines, nil
}

func (r *catalogRepository) DisciplineByID(ctx context.Context, id uint) (*model.Discipline, error) {
	var discipline model.Discipline
	if err := r.db.WithContext(ctx).First(&discipline, id).Error; err != nil {
		return nil, err
	}
	return &discipline, nil
}

func (r *catalogRepository) Groups(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	if err := r.db.WithContext(ctx).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *catalogRepository) GroupByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uint) (*model.Student, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Student, error)
	FindAll(ctx context.Context) ([]*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("University").
		Preload("Faculty").
		Preload("Department").
		Preload("Specialty").
		Preload("Group").
		First(&student, id).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) FindByUserID(ctx context.Context, userID uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("University").
		Preload("Faculty").
		Preload("Department").
		Preload("Specialty").
		Preload("Group").
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		return nil, err
	}

	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context) ([]*model.Student, error) {
	var students []*model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("University").
		Preload("Faculty").
		Preload("Department").
		Preload("Specialty").
		Preload("Group").
		Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	FindByID(ctx context.Context, id uint) (*model.Teacher, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Teacher, error)
	FindAll(ctx context.Context) ([]*model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id uint) error
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) FindByID(ctx context.Context, id uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("University").
		First(&teacher, id).Error; err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (r *teacherRepository) FindByUserID(ctx context.Context, userID uint) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("University").
		Where("user_id = ?", userID).
		First(&teacher).Error; err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (r *teacherRepository) FindAll(ctx context.Context) ([]*model.Teacher, error) {
	var teachers []*model.Teacher
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("University").
		Find(&teachers).Error; err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, id).Error
}

package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

type LessonRepository interface {
	Create(ctx context.Context, lesson *model.CourseLesson) error
	FindByID(ctx context.Context, id uint) (*model.CourseLesson, error)
	FindByCourse(ctx context.Context, courseID uint) ([]*model.CourseLesson, error)
	Update(ctx context.Context, lesson *model.CourseLesson) error
	Delete(ctx context.Context, id uint) error

	AddResource(ctx context.Context, resource *model.LessonResource) error
	ResourcesByLesson(ctx context.Context, lessonID uint) ([]*model.LessonResource, error)
}

type lessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *model.CourseLesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepository) FindByID(ctx context.Context, id uint) (*model.CourseLesson, error) {
	var lesson model.CourseLesson
	if err := r.db.WithContext(ctx).First(&lesson, id).Error; err != nil {
		return nil, err
	}

	return &lesson, nil
}

func (r *lessonRepository) FindByCourse(ctx context.Context, courseID uint) ([]*model.CourseLesson, error) {
	var lessons []*model.CourseLesson
	if err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Find(&lessons).Error; err != nil {
		return nil, err
	}

	return lessons, nil
}

func (r *lessonRepository) Update(ctx context.Context, lesson *model.CourseLesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

func (r *lessonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CourseLesson{}, id).Error
}

func (r *lessonRepository) AddResource(ctx context.Context, resource *model.LessonResource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *lessonRepository) ResourcesByLesson(ctx context.Context, lessonID uint) ([]*model.LessonResource, error) {
	var resources []*model.LessonResource
	if err := r.db.WithContext(ctx).
		Preload("Document").
		Where("lesson_id = ?", lessonID).
		Find(&resources).Error; err != nil {
		return nil, err
	}

	return resources, nil
}

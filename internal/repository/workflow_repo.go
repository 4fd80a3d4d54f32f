package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

type GradeRepository interface {
	FindByNaturalKey(ctx context.Context, assignmentID, studentID uint) (*model.Grade, error)
	FindByAssignment(ctx context.Context, assignmentID uint) ([]*model.Grade, error)
	FindByStudent(ctx context.Context, studentID uint) ([]*model.Grade, error)
	Save(ctx context.Context, grade *model.Grade) error
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) FindByNaturalKey(ctx context.Context, assignmentID, studentID uint) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&grade).Error; err != nil {
		return nil, err
	}

	return &grade, nil
}

func (r *gradeRepository) FindByAssignment(ctx context.Context, assignmentID uint) ([]*model.Grade, error) {
	var grades []*model.Grade
	if err := r.db.WithContext(ctx).
		Preload("Student.User").
		Where("assignment_id = ?", assignmentID).
		Find(&grades).Error; err != nil {
		return nil, err
	}

	return grades, nil
}

func (r *gradeRepository) FindByStudent(ctx context.Context, studentID uint) ([]*model.Grade, error) {
	var grades []*model.Grade
	if err := r.db.WithContext(ctx).
		Preload("Assignment").
		Where("student_id = ?", studentID).
		Find(&grades).Error; err != nil {
		return nil, err
	}

	return grades, nil
}

// Save inserts or updates; the caller sets ID when overwriting an existing row.
func (r *gradeRepository) Save(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

type AttendanceRepository interface {
	FindByNaturalKey(ctx context.Context, lessonID, studentID uint, date string) (*model.LessonAttendance, error)
	FindByLesson(ctx context.Context, lessonID uint) ([]*model.LessonAttendance, error)
	FindByLessonAndDate(ctx context.Context, lessonID uint, date string) ([]*model.LessonAttendance, error)
	Save(ctx context.Context, attendance *model.LessonAttendance) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) FindByNaturalKey(ctx context.Context, lessonID, studentID uint, date string) (*model.LessonAttendance, error) {
	var attendance model.LessonAttendance
	if err := r.db.WithContext(ctx).
		Where("lesson_id = ? AND student_id = ? AND date = ?", lessonID, studentID, date).
		First(&attendance).Error; err != nil {
		return nil, err
	}

	return &attendance, nil
}

func (r *attendanceRepository) FindByLesson(ctx context.Context, lessonID uint) ([]*model.LessonAttendance, error) {
	var records []*model.LessonAttendance
	if err := r.db.WithContext(ctx).
		Preload("Student.User").
		Where("lesson_id = ?", lessonID).
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) FindByLessonAndDate(ctx context.Context, lessonID uint, date string) ([]*model.LessonAttendance, error) {
	var records []*model.LessonAttendance
	if err := r.db.WithContext(ctx).
		Preload("Student.User").
		Where("lesson_id = ? AND date = ?", lessonID, date).
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) Save(ctx context.Context, attendance *model.LessonAttendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

package repository

import (
	"context"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	CreateWithTeacher(ctx context.Context, course *model.Course, teacherID uint) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindAll(ctx context.Context) ([]*model.Course, error)
	FindDuplicate(ctx context.Context, code, name string, teacherID uint) (*model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error

	AssignTeacher(ctx context.Context, courseID, teacherID uint) error
	UnassignTeacher(ctx context.Context, courseID, teacherID uint) error
	TeacherAssigned(ctx context.Context, courseID, teacherID uint) (bool, error)
	TeachersByCourse(ctx context.Context, courseID uint) ([]*model.Teacher, error)
	CoursesByTeacher(ctx context.Context, teacherID uint) ([]*model.Course, error)

	CreateAccessKeys(ctx context.Context, keys []*model.CourseAccessKey) error
	AccessKeysByCourse(ctx context.Context, courseID uint) ([]*model.CourseAccessKey, error)
	FindAccessKey(ctx context.Context, courseID, groupID uint, key string) (*model.CourseAccessKey, error)
	KeyExists(ctx context.Context, courseID uint, key string) (bool, error)
	DeleteAccessKey(ctx context.Context, id uint) error

	Enroll(ctx context.Context, enrollment *model.EnrolledStudent) error
	IsEnrolled(ctx context.Context, studentID, courseID uint) (bool, error)
	EnrolledStudents(ctx context.Context, courseID uint) ([]*model.Student, error)
	CoursesByStudent(ctx context.Context, studentID uint) ([]*model.Course, error)
	Unenroll(ctx context.Context, studentID, courseID uint) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// CreateWithTeacher inserts the course and the creating teacher's assignment
// in one transaction, so a failed assignment never leaves an orphan course.
func (r *courseRepository) CreateWithTeacher(ctx context.Context, course *model.Course, teacherID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}

		assignment := &model.CourseTeacher{CourseID: course.ID, TeacherID: teacherID}
		return tx.Create(assignment).Error
	})
}

func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).
		Preload("Discipline").
		First(&course, id).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*model.Course, error) {
	var courses []*model.Course
	if err := r.db.WithContext(ctx).
		Preload("Discipline").
		Find(&courses).Error; err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) FindDuplicate(ctx context.Context, code, name string, teacherID uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).
		Joins("JOIN course_teachers ON course_teachers.course_id = courses.id").
		Where("courses.code = ? AND courses.name = ? AND course_teachers.teacher_id = ?", code, name, teacherID).
		First(&course).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, id).Error
}

func (r *courseRepository) AssignTeacher(ctx context.Context, courseID, teacherID uint) error {
	assignment := &model.CourseTeacher{CourseID: courseID, TeacherID: teacherID}
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *courseRepository) UnassignTeacher(ctx context.Context, courseID, teacherID uint) error {
	return r.db.WithContext(ctx).
		Where("course_id = ? AND teacher_id = ?", courseID, teacherID).
		Delete(&model.CourseTeacher{}).Error
}

func (r *courseRepository) TeacherAssigned(ctx context.Context, courseID, teacherID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.CourseTeacher{}).
		Where("course_id = ? AND teacher_id = ?", courseID, teacherID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *courseRepository) TeachersByCourse(ctx context.Context, courseID uint) ([]*model.Teacher, error) {
	var teachers []*model.Teacher
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN course_teachers ON course_teachers.teacher_id = teachers.id").
		Where("course_teachers.course_id = ?", courseID).
		Find(&teachers).Error; err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *courseRepository) CoursesByTeacher(ctx context.Context, teacherID uint) ([]*model.Course, error) {
	var courses []*model.Course
	if err := r.db.WithContext(ctx).
		Preload("Discipline").
		Joins("JOIN course_teachers ON course_teachers.course_id = courses.id").
		Where("course_teachers.teacher_id = ?", teacherID).
		Find(&courses).Error; err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) CreateAccessKeys(ctx context.Context, keys []*model.CourseAccessKey) error {
	return r.db.WithContext(ctx).Create(&keys).Error
}

func (r *courseRepository) AccessKeysByCourse(ctx context.Context, courseID uint) ([]*model.CourseAccessKey, error) {
	var keys []*model.CourseAccessKey
	if err := r.db.WithContext(ctx).
		Preload("Group").
		Where("course_id = ?", courseID).
		Find(&keys).Error; err != nil {
		return nil, err
	}

	return keys, nil
}

func (r *courseRepository) FindAccessKey(ctx context.Context, courseID, groupID uint, key string) (*model.CourseAccessKey, error) {
	var accessKey model.CourseAccessKey
	if err := r.db.WithContext(ctx).
		Where("course_id = ? AND group_id = ? AND access_key = ?", courseID, groupID, key).
		First(&accessKey).Error; err != nil {
		return nil, err
	}

	return &accessKey, nil
}

func (r *courseRepository) KeyExists(ctx context.Context, courseID uint, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.CourseAccessKey{}).
		Where("course_id = ? AND access_key = ?", courseID, key).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *courseRepository) DeleteAccessKey(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CourseAccessKey{}, id).Error
}

func (r *courseRepository) Enroll(ctx context.Context, enrollment *model.EnrolledStudent) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *courseRepository) IsEnrolled(ctx context.Context, studentID, courseID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.EnrolledStudent{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *courseRepository) EnrolledStudents(ctx context.Context, courseID uint) ([]*model.Student, error) {
	var students []*model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Group").
		Joins("JOIN enrolled_students ON enrolled_students.student_id = students.id").
		Where("enrolled_students.course_id = ?", courseID).
		Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *courseRepository) CoursesByStudent(ctx context.Context, studentID uint) ([]*model.Course, error) {
	var courses []*model.Course
	if err := r.db.WithContext(ctx).
		Preload("Discipline").
		Joins("JOIN enrolled_students ON enrolled_students.course_id = courses.id").
		Where("enrolled_students.student_id = ?", studentID).
		Find(&courses).Error; err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) Unenroll(ctx context.Context, studentID, courseID uint) error {
	return r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&model.EnrolledStudent{}).Error
}

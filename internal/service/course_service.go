package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
)

type CourseService interface {
	CreateCourse(ctx context.Context, input dto.CreateCourseInput) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id uint) (*dto.CourseResponse, error)
	GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, id uint, input dto.UpdateCourseInput) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, id uint) error

	AssignTeacher(ctx context.Context, courseID, teacherID uint) error
	UnassignTeacher(ctx context.Context, courseID, teacherID uint) error
	GetTeacherCourses(ctx context.Context, teacherID uint) ([]dto.CourseResponse, error)

	CreateAccessKeys(ctx context.Context, courseID uint, input dto.CreateAccessKeyInput) ([]dto.AccessKeyResponse, error)
	GetAccessKeys(ctx context.Context, courseID uint) ([]dto.AccessKeyResponse, error)
	DeleteAccessKey(ctx context.Context, courseID, keyID uint) error

	EnrollStudent(ctx context.Context, courseID uint, input dto.EnrollInput) error
	UnenrollStudent(ctx context.Context, courseID, studentID uint) error
	GetEnrolledStudents(ctx context.Context, courseID uint) ([]dto.StudentResponse, error)
	GetStudentCourses(ctx context.Context, studentID uint) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo        repository.CourseRepository
	teacherRepo repository.TeacherRepository
	studentRepo repository.StudentRepository
	catalog     repository.CatalogRepository
}

func NewCourseService(
	repo repository.CourseRepository,
	teacherRepo repository.TeacherRepository,
	studentRepo repository.StudentRepository,
	catalog repository.CatalogRepository,
) CourseService {
	return &courseService{
		repo:        repo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		catalog:     catalog,
	}
}

// CreateCourse inserts the course and assigns the creating teacher in a
// single transaction.
func (s *courseService) CreateCourse(ctx context.Context, input dto.CreateCourseInput) (*dto.CourseResponse, error) {
	if _, err := s.teacherRepo.FindByID(ctx, input.TeacherID); err != nil {
		return nil, found("teacher", err)
	}

	if _, err := s.catalog.DisciplineByID(ctx, input.DisciplineID); err != nil {
		return nil, found("discipline", err)
	}

	if _, err := s.repo.FindDuplicate(ctx, input.Code, input.Name, input.TeacherID); err == nil {
		return nil, apperror.Conflict("course with this code and name already exists for this teacher")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("create course", err)
	}

	course := &model.Course{
		DisciplineID: input.DisciplineID,
		Name:         input.Name,
		Description:  input.Description,
		Code:         input.Code,
	}

	if err := s.repo.CreateWithTeacher(ctx, course, input.TeacherID); err != nil {
		return nil, apperror.Database("create course", err)
	}

	return s.GetCourse(ctx, course.ID)
}

func (s *courseService) GetCourse(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("course", err)
	}

	teachers, err := s.repo.TeachersByCourse(ctx, id)
	if err != nil {
		return nil, apperror.Database("list course teachers", err)
	}

	resp := courseToResponse(course)
	for _, teacher := range teachers {
		resp.Teachers = append(resp.Teachers, teacher.User.FirstName+" "+teacher.User.LastName)
	}

	return &resp, nil
}

func (s *courseService) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Database("list courses", err)
	}
	if len(courses) == 0 {
		return nil, apperror.EmptyList("courses")
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, courseToResponse(course))
	}

	return responses, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, id uint, input dto.UpdateCourseInput) (*dto.CourseResponse, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("course", err)
	}

	course.Name = input.Name
	course.Description = input.Description
	course.Code = input.Code

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, apperror.Database("update course", err)
	}

	return s.GetCourse(ctx, course.ID)
}

func (s *courseService) DeleteCourse(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return found("course", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Database("delete course", err)
	}

	return nil
}

func (s *courseService) AssignTeacher(ctx context.Context, courseID, teacherID uint) error {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return found("course", err)
	}

	if _, err := s.teacherRepo.FindByID(ctx, teacherID); err != nil {
		return found("teacher", err)
	}

	assigned, err := s.repo.TeacherAssigned(ctx, courseID, teacherID)
	if err != nil {
		return apperror.Database("assign teacher", err)
	}
	if assigned {
		return apperror.Conflict("teacher is already assigned to this course")
	}

	if err := s.repo.AssignTeacher(ctx, courseID, teacherID); err != nil {
		return apperror.Database("assign teacher", err)
	}

	return nil
}

func (s *courseService) UnassignTeacher(ctx context.Context, courseID, teacherID uint) error {
	assigned, err := s.repo.TeacherAssigned(ctx, courseID, teacherID)
	if err != nil {
		return apperror.Database("unassign teacher", err)
	}
	if !assigned {
		return apperror.NotFound("teacher assignment")
	}

	if err := s.repo.UnassignTeacher(ctx, courseID, teacherID); err != nil {
		return apperror.Database("unassign teacher", err)
	}

	return nil
}

func (s *courseService) GetTeacherCourses(ctx context.Context, teacherID uint) ([]dto.CourseResponse, error) {
	if _, err := s.teacherRepo.FindByID(ctx, teacherID); err != nil {
		return nil, found("teacher", err)
	}

	courses, err := s.repo.CoursesByTeacher(ctx, teacherID)
	if err != nil {
		return nil, apperror.Database("list teacher courses", err)
	}
	if len(courses) == 0 {
		return nil, apperror.EmptyList("courses")
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, courseToResponse(course))
	}

	return responses, nil
}

// CreateAccessKeys issues one key row per requested group. The key string is
// shared across the groups of one request; a missing key is generated.
func (s *courseService) CreateAccessKeys(ctx context.Context, courseID uint, input dto.CreateAccessKeyInput) ([]dto.AccessKeyResponse, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return nil, found("course", err)
	}

	for _, groupID := range input.GroupIDs {
		if _, err := s.catalog.GroupByID(ctx, groupID); err != nil {
			return nil, found("group", err)
		}
	}

	key := input.AccessKey
	if key == "" {
		key = uuid.NewString()
	}

	exists, err := s.repo.KeyExists(ctx, courseID, key)
	if err != nil {
		return nil, apperror.Database("create access key", err)
	}
	if exists {
		return nil, apperror.Conflict("access key already exists for this course")
	}

	keys := make([]*model.CourseAccessKey, 0, len(input.GroupIDs))
	for _, groupID := range input.GroupIDs {
		keys = append(keys, &model.CourseAccessKey{
			CourseID:  courseID,
			GroupID:   groupID,
			AccessKey: key,
		})
	}

	if err := s.repo.CreateAccessKeys(ctx, keys); err != nil {
		return nil, apperror.Database("create access key", err)
	}

	return s.GetAccessKeys(ctx, courseID)
}

func (s *courseService) GetAccessKeys(ctx context.Context, courseID uint) ([]dto.AccessKeyResponse, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return nil, found("course", err)
	}

	keys, err := s.repo.AccessKeysByCourse(ctx, courseID)
	if err != nil {
		return nil, apperror.Database("list access keys", err)
	}
	if len(keys) == 0 {
		return nil, apperror.EmptyList("access keys")
	}

	responses := make([]dto.AccessKeyResponse, 0, len(keys))
	for _, key := range keys {
		responses = append(responses, dto.AccessKeyResponse{
			ID:        key.ID,
			CourseID:  key.CourseID,
			GroupID:   key.GroupID,
			Group:     key.Group.Name,
			AccessKey: key.AccessKey,
		})
	}

	return responses, nil
}

func (s *courseService) DeleteAccessKey(ctx context.Context, courseID, keyID uint) error {
	keys, err := s.repo.AccessKeysByCourse(ctx, courseID)
	if err != nil {
		return apperror.Database("delete access key", err)
	}

	for _, key := range keys {
		if key.ID == keyID {
			if err := s.repo.DeleteAccessKey(ctx, keyID); err != nil {
				return apperror.Database("delete access key", err)
			}
			return nil
		}
	}

	return apperror.NotFound("access key")
}

// EnrollStudent admits a student into a course when the submitted key matches
// an access key issued for the student's group and this course.
func (s *courseService) EnrollStudent(ctx context.Context, courseID uint, input dto.EnrollInput) error {
	student, err := s.studentRepo.FindByID(ctx, input.StudentID)
	if err != nil {
		return found("student", err)
	}

	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return found("course", err)
	}

	enrolled, err := s.repo.IsEnrolled(ctx, student.ID, courseID)
	if err != nil {
		return apperror.Database("enroll student", err)
	}
	if enrolled {
		return apperror.Conflict("student is already enrolled in this course")
	}

	if _, err := s.repo.FindAccessKey(ctx, courseID, student.GroupID, input.AccessKey); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ValidationField("accessKey", "wrong access key")
		}
		return apperror.Database("enroll student", err)
	}

	enrollment := &model.EnrolledStudent{StudentID: student.ID, CourseID: courseID}
	if err := s.repo.Enroll(ctx, enrollment); err != nil {
		return apperror.Database("enroll student", err)
	}

	return nil
}

func (s *courseService) UnenrollStudent(ctx context.Context, courseID, studentID uint) error {
	enrolled, err := s.repo.IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return apperror.Database("unenroll student", err)
	}
	if !enrolled {
		return apperror.NotFound("enrollment")
	}

	if err := s.repo.Unenroll(ctx, studentID, courseID); err != nil {
		return apperror.Database("unenroll student", err)
	}

	return nil
}

func (s *courseService) GetEnrolledStudents(ctx context.Context, courseID uint) ([]dto.StudentResponse, error) {
	if _, err := s.repo.FindByID(ctx, courseID); err != nil {
		return nil, found("course", err)
	}

	students, err := s.repo.EnrolledStudents(ctx, courseID)
	if err != nil {
		return nil, apperror.Database("list enrolled students", err)
	}
	if len(students) == 0 {
		return nil, apperror.EmptyList("enrolled students")
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.StudentResponse{
			ID:        student.ID,
			UserID:    student.UserID,
			FirstName: student.User.FirstName,
			LastName:  student.User.LastName,
			Group:     student.Group.Name,
		})
	}

	return responses, nil
}

func (s *courseService) GetStudentCourses(ctx context.Context, studentID uint) ([]dto.CourseResponse, error) {
	if _, err := s.studentRepo.FindByID(ctx, studentID); err != nil {
		return nil, found("student", err)
	}

	courses, err := s.repo.CoursesByStudent(ctx, studentID)
	if err != nil {
		return nil, apperror.Database("list student courses", err)
	}
	if len(courses) == 0 {
		return nil, apperror.EmptyList("courses")
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, courseToResponse(course))
	}

	return responses, nil
}

func courseToResponse(course *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:          course.ID,
		Discipline:  course.Discipline.Name,
		Name:        course.Name,
		Description: course.Description,
		Code:        course.Code,
	}
}

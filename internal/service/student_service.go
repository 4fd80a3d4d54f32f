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

type StudentService interface {
	CreateStudent(ctx context.Context, input dto.CreateStudentInput) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id uint) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id uint, input dto.UpdateStudentInput) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id uint) error
}

type studentService struct {
	repo     repository.StudentRepository
	userRepo repository.UserRepository
	catalog  repository.CatalogRepository
}

func NewStudentService(repo repository.StudentRepository, userRepo repository.UserRepository, catalog repository.CatalogRepository) StudentService {
	return &studentService{repo: repo, userRepo: userRepo, catalog: catalog}
}

// checkHierarchy verifies every referenced catalog row exists and that the
// submitted ids agree with the University → Faculty → {Department, Specialty}
// chain before anything is written.
func (s *studentService) checkHierarchy(ctx context.Context, universityID, facultyID, departmentID, specialtyID, groupID uint) error {
	if _, err := s.catalog.UniversityByID(ctx, universityID); err != nil {
		return found("university", err)
	}

	faculty, err := s.catalog.FacultyByID(ctx, facultyID)
	if err != nil {
		return found("faculty", err)
	}

	department, err := s.catalog.DepartmentByID(ctx, departmentID)
	if err != nil {
		return found("department", err)
	}

	specialty, err := s.catalog.SpecialtyByID(ctx, specialtyID)
	if err != nil {
		return found("specialty", err)
	}

	if _, err := s.catalog.GroupByID(ctx, groupID); err != nil {
		return found("group", err)
	}

	return firstMismatch(
		matchPair{faculty.UniversityID, universityID, "faculty's university", "submitted university"},
		matchPair{department.FacultyID, facultyID, "department's faculty", "submitted faculty"},
		matchPair{specialty.FacultyID, facultyID, "specialty's faculty", "submitted faculty"},
	)
}

func (s *studentService) CreateStudent(ctx context.Context, input dto.CreateStudentInput) (*dto.StudentResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, found("user", err)
	}

	if _, err := s.repo.FindByUserID(ctx, input.UserID); err == nil {
		return nil, apperror.Conflict("student profile already exists for this user")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("create student", err)
	}

	if err := s.checkHierarchy(ctx, input.UniversityID, input.FacultyID, input.DepartmentID, input.SpecialtyID, input.GroupID); err != nil {
		return nil, err
	}

	student := &model.Student{
		UserID:         input.UserID,
		UniversityID:   input.UniversityID,
		FacultyID:      input.FacultyID,
		DepartmentID:   input.DepartmentID,
		SpecialtyID:    input.SpecialtyID,
		GroupID:        input.GroupID,
		EnrollmentDate: input.EnrollmentDate,
		GraduationDate: input.GraduationDate,
		FinanceType:    input.FinanceType,
		Scholarship:    input.Scholarship,
		StudyFrequency: input.StudyFrequency,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, apperror.Database("create student", err)
	}

	return s.GetStudent(ctx, student.ID)
}

func (s *studentService) GetStudent(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("student", err)
	}

	resp := studentToResponse(student)
	return &resp, nil
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Database("list students", err)
	}
	if len(students) == 0 {
		return nil, apperror.EmptyList("students")
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, studentToResponse(student))
	}

	return responses, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id uint, input dto.UpdateStudentInput) (*dto.StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("student", err)
	}

	if err := s.checkHierarchy(ctx, input.UniversityID, input.FacultyID, input.DepartmentID, input.SpecialtyID, input.GroupID); err != nil {
		return nil, err
	}

	student.UniversityID = input.UniversityID
	student.FacultyID = input.FacultyID
	student.DepartmentID = input.DepartmentID
	student.SpecialtyID = input.SpecialtyID
	student.GroupID = input.GroupID
	student.EnrollmentDate = input.EnrollmentDate
	student.GraduationDate = input.GraduationDate
	student.FinanceType = input.FinanceType
	student.Scholarship = input.Scholarship
	student.StudyFrequency = input.StudyFrequency

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, apperror.Database("update student", err)
	}

	return s.GetStudent(ctx, student.ID)
}

func (s *studentService) DeleteStudent(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return found("student", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.Database("delete student", err)
	}

	return nil
}

func studentToResponse(student *model.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:             student.ID,
		UserID:         student.UserID,
		FirstName:      student.User.FirstName,
		LastName:       student.User.LastName,
		University:     student.University.Name,
		Faculty:        student.Faculty.Name,
		Department:     student.Department.Name,
		Specialty:      student.Specialty.Name,
		Group:          student.Group.Name,
		EnrollmentDate: student.EnrollmentDate,
		GraduationDate: student.GraduationDate,
		FinanceType:    student.FinanceType,
		Scholarship:    student.Scholarship,
		StudyFrequency: student.StudyFrequency,
	}
}

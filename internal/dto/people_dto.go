package dto

import "time"

type CreateStudentInput struct {
	UserID         uint       `json:"user_id" binding:"required"`
	UniversityID   uint       `json:"university_id" binding:"required"`
	FacultyID      uint       `json:"faculty_id" binding:"required"`
	DepartmentID   uint       `json:"department_id" binding:"required"`
	SpecialtyID    uint       `json:"specialty_id" binding:"required"`
	GroupID        uint       `json:"group_id" binding:"required"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	GraduationDate *time.Time `json:"graduation_date"`
	FinanceType    string     `json:"finance_type"`
	Scholarship    string     `json:"scholarship"`
	StudyFrequency string     `json:"study_frequency"`
}

type UpdateStudentInput struct {
	UniversityID   uint       `json:"university_id" binding:"required"`
	FacultyID      uint       `json:"faculty_id" binding:"required"`
	DepartmentID   uint       `json:"department_id" binding:"required"`
	SpecialtyID    uint       `json:"specialty_id" binding:"required"`
	GroupID        uint       `json:"group_id" binding:"required"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	GraduationDate *time.Time `json:"graduation_date"`
	FinanceType    string     `json:"finance_type"`
	Scholarship    string     `json:"scholarship"`
	StudyFrequency string     `json:"study_frequency"`
}

type StudentResponse struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	University     string     `json:"university"`
	Faculty        string     `json:"faculty"`
	Department     string     `json:"department"`
	Specialty      string     `json:"specialty"`
	Group          string     `json:"group"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty"`
	GraduationDate *time.Time `json:"graduation_date,omitempty"`
	FinanceType    string     `json:"finance_type"`
	Scholarship    string     `json:"scholarship"`
	StudyFrequency string     `json:"study_frequency"`
}

type CreateTeacherInput struct {
	UserID       uint `json:"user_id" binding:"required"`
	UniversityID uint `json:"university_id" binding:"required"`
}

type UpdateTeacherInput struct {
	UniversityID uint `json:"university_id" binding:"required"`
}

type TeacherResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	University string `json:"university"`
}

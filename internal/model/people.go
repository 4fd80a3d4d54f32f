package model

import "time"

type Student struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User       `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	UniversityID   uint       `gorm:"not null" json:"university_id"`
	University     University `json:"-"`
	FacultyID      uint       `gorm:"not null" json:"faculty_id"`
	Faculty        Faculty    `json:"-"`
	DepartmentID   uint       `gorm:"not null" json:"department_id"`
	Department     Department `json:"-"`
	SpecialtyID    uint       `gorm:"not null" json:"specialty_id"`
	Specialty      Specialty  `json:"-"`
	GroupID        uint       `gorm:"not null" json:"group_id"`
	Group          Group      `json:"-"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty"`
	GraduationDate *time.Time `json:"graduation_date,omitempty"`
	FinanceType    string     `gorm:"size:100" json:"finance_type"`
	Scholarship    string     `gorm:"size:100" json:"scholarship"`
	StudyFrequency string     `gorm:"size:100" json:"study_frequency"`
}

type Teacher struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	User         User       `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	UniversityID uint       `gorm:"not null" json:"university_id"`
	University   University `json:"-"`
}

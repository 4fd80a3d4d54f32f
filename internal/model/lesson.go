package model

import "time"

type CourseLesson struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	CourseID uint   `gorm:"not null;index" json:"course_id"`
	Course   Course `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name     string `gorm:"size:255;not null" json:"name"`
}

type LessonResource struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	LessonID   uint         `gorm:"not null;index" json:"lesson_id"`
	Lesson     CourseLesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentID uint         `gorm:"not null" json:"document_id"`
	Document   Document     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type LessonAssignment struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	LessonID        uint         `gorm:"not null;index" json:"lesson_id"`
	Lesson          CourseLesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	Name            string       `gorm:"size:255;not null" json:"name"`
	Task            string       `gorm:"type:text" json:"task"`
	AllowSubmission bool         `gorm:"not null;default:true" json:"allow_submission"`
	DueDate         *time.Time   `json:"due_date,omitempty"`
}

type AssignmentResource struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	AssignmentID uint             `gorm:"not null;index" json:"assignment_id"`
	Assignment   LessonAssignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentID   uint             `gorm:"not null" json:"document_id"`
	Document     Document         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Submission struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	StudentID      uint             `gorm:"not null;index" json:"student_id"`
	Student        Student          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AssignmentID   uint             `gorm:"not null;index" json:"assignment_id"`
	Assignment     LessonAssignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	DocumentID     uint             `gorm:"not null;uniqueIndex" json:"document_id"`
	Document       Document         `json:"-"`
	SubmissionDate time.Time        `gorm:"not null" json:"submission_date"`
}

// Grade holds at most one row per (assignment, student); grading again
// overwrites Value and TeacherName.
type Grade struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	AssignmentID uint             `gorm:"not null;uniqueIndex:idx_assignment_student" json:"assignment_id"`
	Assignment   LessonAssignment `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
	StudentID    uint             `gorm:"not null;uniqueIndex:idx_assignment_student" json:"student_id"`
	Student      Student          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Value        float64          `gorm:"not null" json:"value"`
	TeacherName  string           `gorm:"size:255" json:"teacher_name"`
}

// LessonAttendance holds at most one row per (lesson, student, date).
type LessonAttendance struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	LessonID  uint         `gorm:"not null;uniqueIndex:idx_lesson_student_date" json:"lesson_id"`
	Lesson    CourseLesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
	StudentID uint         `gorm:"not null;uniqueIndex:idx_lesson_student_date" json:"student_id"`
	Student   Student      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date      string       `gorm:"size:10;not null;uniqueIndex:idx_lesson_student_date" json:"date"`
	Status    string       `gorm:"size:50;not null" json:"status"`
}

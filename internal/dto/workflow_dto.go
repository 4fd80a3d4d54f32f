package dto

import "time"

type GradeInput struct {
	AssignmentID uint    `json:"assignment_id" binding:"required"`
	StudentID    uint    `json:"student_id" binding:"required"`
	Value        float64 `json:"value" binding:"gte=0,lte=100"`
	TeacherName  string  `json:"teacher_name" binding:"required"`
}

type GradeResponse struct {
	ID           uint    `json:"id"`
	AssignmentID uint    `json:"assignment_id"`
	StudentID    uint    `json:"student_id"`
	Student      string  `json:"student"`
	Value        float64 `json:"value"`
	TeacherName  string  `json:"teacher_name"`
}

type AttendanceInput struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,max=50"`
}

type AttendanceResponse struct {
	ID        uint   `json:"id"`
	LessonID  uint   `json:"lesson_id"`
	StudentID uint   `json:"student_id"`
	Student   string `json:"student"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

type SubmissionResponse struct {
	ID             uint      `json:"id"`
	AssignmentID   uint      `json:"assignment_id"`
	StudentID      uint      `json:"student_id"`
	Student        string    `json:"student"`
	DocumentID     uint      `json:"document_id"`
	DocumentName   string    `json:"document_name"`
	SubmissionDate time.Time `json:"submission_date"`
}

type DocumentResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

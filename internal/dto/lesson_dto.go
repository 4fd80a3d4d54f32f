package dto

import "time"

type CreateLessonInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateLessonInput struct {
	Name string `json:"name" binding:"required,max=255"`
}

type AttachResourceInput struct {
	DocumentID uint `json:"document_id" binding:"required"`
}

type CreateAssignmentInput struct {
	Name            string     `json:"name" binding:"required,max=255"`
	Task            string     `json:"task"`
	AllowSubmission bool       `json:"allow_submission"`
	DueDate         *time.Time `json:"due_date"`
}

type UpdateAssignmentInput struct {
	Name            string     `json:"name" binding:"required,max=255"`
	Task            string     `json:"task"`
	AllowSubmission bool       `json:"allow_submission"`
	DueDate         *time.Time `json:"due_date"`
}

type AssignmentResponse struct {
	ID              uint       `json:"id"`
	LessonID        uint       `json:"lesson_id"`
	Name            string     `json:"name"`
	Task            string     `json:"task"`
	AllowSubmission bool       `json:"allow_submission"`
	DueDate         *time.Time `json:"due_date,omitempty"`
}

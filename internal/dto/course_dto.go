package dto

type CreateCourseInput struct {
	DisciplineID uint   `json:"discipline_id" binding:"required"`
	TeacherID    uint   `json:"teacher_id" binding:"required"`
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description"`
	Code         string `json:"code" binding:"required,max=50"`
}

type UpdateCourseInput struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	Code        string `json:"code" binding:"required,max=50"`
}

type AssignTeacherInput struct {
	TeacherID uint `json:"teacher_id" binding:"required"`
}

// CreateAccessKeyInput issues the same key string to every listed group.
// When AccessKey is empty the service generates one.
type CreateAccessKeyInput struct {
	GroupIDs  []uint `json:"group_ids" binding:"required,min=1"`
	AccessKey string `json:"access_key"`
}

type EnrollInput struct {
	StudentID uint   `json:"student_id" binding:"required"`
	AccessKey string `json:"access_key" binding:"required"`
}

type CourseResponse struct {
	ID          uint     `json:"id"`
	Discipline  string   `json:"discipline"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Teachers    []string `json:"teachers,omitempty"`
}

type AccessKeyResponse struct {
	ID        uint   `json:"id"`
	CourseID  uint   `json:"course_id"`
	GroupID   uint   `json:"group_id"`
	Group     string `json:"group"`
	AccessKey string `json:"access_key"`
}

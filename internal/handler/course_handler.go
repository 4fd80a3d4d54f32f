package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type CourseHandler struct {
	courseService service.CourseService
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var input dto.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	courses, err := h.courseService.GetAllCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	course, err := h.courseService.UpdateCourse(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.DeleteCourse(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "course deleted successfully"})
}

func (h *CourseHandler) AssignTeacher(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.AssignTeacherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.courseService.AssignTeacher(c.Request.Context(), id, input.TeacherID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "teacher assigned successfully"})
}

func (h *CourseHandler) UnassignTeacher(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	teacherID, ok := uintParam(c, "teacher_id")
	if !ok {
		return
	}

	if err := h.courseService.UnassignTeacher(c.Request.Context(), id, teacherID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "teacher unassigned successfully"})
}

func (h *CourseHandler) CreateAccessKeys(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateAccessKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	keys, err := h.courseService.CreateAccessKeys(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, keys)
}

func (h *CourseHandler) GetAccessKeys(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	keys, err := h.courseService.GetAccessKeys(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, keys)
}

func (h *CourseHandler) DeleteAccessKey(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	keyID, ok := uintParam(c, "key_id")
	if !ok {
		return
	}

	if err := h.courseService.DeleteAccessKey(c.Request.Context(), id, keyID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "access key deleted successfully"})
}

func (h *CourseHandler) EnrollStudent(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.EnrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.courseService.EnrollStudent(c.Request.Context(), id, input); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "student enrolled successfully"})
}

func (h *CourseHandler) UnenrollStudent(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	studentID, ok := uintParam(c, "student_id")
	if !ok {
		return
	}

	if err := h.courseService.UnenrollStudent(c.Request.Context(), id, studentID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "student unenrolled successfully"})
}

func (h *CourseHandler) GetEnrolledStudents(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	students, err := h.courseService.GetEnrolledStudents(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type TeacherHandler struct {
	teacherService service.TeacherService
	courseService  service.CourseService
}

func NewTeacherHandler(teacherService service.TeacherService, courseService service.CourseService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService, courseService: courseService}
}

func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var input dto.CreateTeacherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	teacher, err := h.teacherService.CreateTeacher(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, teacher)
}

func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	teacher, err := h.teacherService.GetTeacher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) GetAllTeachers(c *gin.Context) {
	teachers, err := h.teacherService.GetAllTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, teachers)
}

func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateTeacherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	teacher, err := h.teacherService.UpdateTeacher(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.teacherService.DeleteTeacher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "teacher deleted successfully"})
}

func (h *TeacherHandler) GetTeacherCourses(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	courses, err := h.courseService.GetTeacherCourses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

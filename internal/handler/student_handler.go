package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type StudentHandler struct {
	studentService service.StudentService
	gradeService   service.GradeService
	courseService  service.CourseService
}

func NewStudentHandler(studentService service.StudentService, gradeService service.GradeService, courseService service.CourseService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		gradeService:   gradeService,
		courseService:  courseService,
	}
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var input dto.CreateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	student, err := h.studentService.GetStudent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) GetAllStudents(c *gin.Context) {
	students, err := h.studentService.GetAllStudents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "student deleted successfully"})
}

func (h *StudentHandler) GetStudentGrades(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	grades, err := h.gradeService.GetStudentGrades(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, grades)
}

func (h *StudentHandler) GetStudentCourses(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	courses, err := h.courseService.GetStudentCourses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

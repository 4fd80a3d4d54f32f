package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type AssignmentHandler struct {
	assignmentService service.AssignmentService
	documentService   service.DocumentService
	gradeService      service.GradeService
}

func NewAssignmentHandler(assignmentService service.AssignmentService, documentService service.DocumentService, gradeService service.GradeService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		documentService:   documentService,
		gradeService:      gradeService,
	}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	lessonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Request.Context(), lessonID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetAssignment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) GetLessonAssignments(c *gin.Context) {
	lessonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.GetLessonAssignments(c.Request.Context(), lessonID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	assignment, err := h.assignmentService.UpdateAssignment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.assignmentService.DeleteAssignment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assignment deleted successfully"})
}

func (h *AssignmentHandler) AttachResource(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.AttachResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.assignmentService.AttachResource(c.Request.Context(), id, input); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "resource attached successfully"})
}

func (h *AssignmentHandler) GetResources(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	resources, err := h.assignmentService.GetResources(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

// Submit accepts a multipart form with the submitted file and a student_id
// field; the file is stored as a document and linked to the submission.
func (h *AssignmentHandler) Submit(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var form struct {
		StudentID uint `form:"student_id" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		bindingError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"file": "file is required"}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, err)
		return
	}

	document, err := h.documentService.Upload(c.Request.Context(), fileHeader.Filename, content)
	if err != nil {
		response.Error(c, err)
		return
	}

	submission, err := h.assignmentService.Submit(c.Request.Context(), id, form.StudentID, document.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

func (h *AssignmentHandler) GetSubmissions(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	submissions, err := h.assignmentService.GetSubmissions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

func (h *AssignmentHandler) GetGrades(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	grades, err := h.gradeService.GetAssignmentGrades(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, grades)
}

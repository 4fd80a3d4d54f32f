package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type LessonHandler struct {
	lessonService service.LessonService
}

func NewLessonHandler(lessonService service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	courseID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.CreateLessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	lesson, err := h.lessonService.CreateLesson(c.Request.Context(), courseID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) GetLesson(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	lesson, err := h.lessonService.GetLesson(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) GetCourseLessons(c *gin.Context) {
	courseID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	lessons, err := h.lessonService.GetCourseLessons(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateLessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	lesson, err := h.lessonService.UpdateLesson(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.lessonService.DeleteLesson(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lesson deleted successfully"})
}

func (h *LessonHandler) AttachResource(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.AttachResourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	if err := h.lessonService.AttachResource(c.Request.Context(), id, input); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "resource attached successfully"})
}

func (h *LessonHandler) GetResources(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	resources, err := h.lessonService.GetResources(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resources)
}

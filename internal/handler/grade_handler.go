package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type GradeHandler struct {
	gradeService service.GradeService
}

func NewGradeHandler(gradeService service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// GradeStudent creates or overwrites the grade for (assignment, student).
func (h *GradeHandler) GradeStudent(c *gin.Context) {
	var input dto.GradeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	grade, err := h.gradeService.GradeStudent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, grade)
}

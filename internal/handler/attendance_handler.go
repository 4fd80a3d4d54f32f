package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	lessonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input dto.AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	record, err := h.attendanceService.RecordAttendance(c.Request.Context(), lessonID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *AttendanceHandler) GetLessonAttendance(c *gin.Context) {
	lessonID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	records, err := h.attendanceService.GetLessonAttendance(c.Request.Context(), lessonID, c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

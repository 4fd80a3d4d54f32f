package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Upload(c *gin.Context) {
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

	c.JSON(http.StatusCreated, document)
}

// Download streams the decoded bytes back under the original file name.
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	document, err := h.documentService.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+document.FileName+`"`)
	c.Data(http.StatusOK, "application/octet-stream", document.Content)
}

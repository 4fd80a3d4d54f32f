package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) GetUniversities(c *gin.Context) {
	universities, err := h.catalogService.GetUniversities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, universities)
}

func (h *CatalogHandler) GetFaculties(c *gin.Context) {
	universityID, ok := uintParam(c, "university_id")
	if !ok {
		return
	}

	faculties, err := h.catalogService.GetFaculties(c.Request.Context(), universityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, faculties)
}

func (h *CatalogHandler) GetDepartments(c *gin.Context) {
	facultyID, ok := uintParam(c, "faculty_id")
	if !ok {
		return
	}

	departments, err := h.catalogService.GetDepartments(c.Request.Context(), facultyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

func (h *CatalogHandler) GetSpecialties(c *gin.Context) {
	facultyID, ok := uintParam(c, "faculty_id")
	if !ok {
		return
	}

	specialties, err := h.catalogService.GetSpecialties(c.Request.Context(), facultyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, specialties)
}

func (h *CatalogHandler) GetDisciplines(c *gin.Context) {
	disciplines, err := h.catalogService.GetDisciplines(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, disciplines)
}

func (h *CatalogHandler) GetGroups(c *gin.Context) {
	groups, err := h.catalogService.GetGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/pkg/validator"
)

// uintParam parses a numeric path parameter; on failure it writes the 400
// response itself and returns ok=false.
func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}

// bindingError writes the field-error map for a failed request binding.
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": validator.FieldErrors(err)})
}

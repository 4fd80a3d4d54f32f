package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/config"
	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/middleware"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"github.com/vmelnychenko/campusdesk/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
	cookieTTL   int
	secureMode  bool
}

func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieTTL:   int(cfg.JWTTTL.Seconds()),
		secureMode:  cfg.AppEnv == "production",
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input dto.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	res, err := h.authService.Signup(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setTokenCookie(c, res.AccessToken)
	c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindingError(c, err)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setTokenCookie(c, res.AccessToken)
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureMode, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// setTokenCookie delivers the token in an HTTP-only cookie; the SPA never
// reads it directly.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.TokenCookie, token, h.cookieTTL, "/", "", h.secureMode, true)
}

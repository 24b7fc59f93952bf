package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/helpers"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Cookie *helpers.Manager
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, cookie *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookie: cookie, Logger: logger}
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req application.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "account created", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	h.Cookie.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, u, "logged in", nil)
}

// Refresh POST /api/auth/refresh rotates both tokens from the refresh cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie("refresh_token")
	if err != nil || token == "" {
		response.Error(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, err := h.Svc.Refresh(c.Request.Context(), token)
	if err != nil {
		h.Cookie.Clear(c)
		respondError(c, h.Logger, err)
		return
	}
	h.Cookie.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{"refreshed": true}, "tokens refreshed", nil)
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), callerID(c))
	h.Cookie.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// Me GET /api/auth/me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Users.GetByID(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.Logger, application.ErrUnauthenticated)
		return
	}
	response.Success(c, http.StatusOK, u, "ok", nil)
}

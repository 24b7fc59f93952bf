package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

type AdminHandler struct {
	Svc     *application.AdminService
	PostSvc *application.PostService
	Logger  *logrus.Logger
}

func NewAdminHandler(svc *application.AdminService, posts *application.PostService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, PostSvc: posts, Logger: logger}
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.Svc.Stats(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, st, "ok", nil)
}

// Posts GET /api/admin/posts?category=&search=&page=&limit= browses every
// board, including ALL, through the same paginated query as the public list.
func (h *AdminHandler) Posts(c *gin.Context) {
	q := application.PostQuery{
		Category: c.DefaultQuery("category", "ALL"),
		Search:   c.Query("search"),
		Page:     atoiDefault(c.Query("page"), 1),
		Limit:    atoiDefault(c.Query("limit"), 0),
	}
	page, err := h.PostSvc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, page.Posts, "ok", page.Pagination)
}

// Users GET /api/admin/users?search=&page=&limit=
func (h *AdminHandler) Users(c *gin.Context) {
	q := application.UserQuery{
		Search: c.Query("search"),
		Page:   atoiDefault(c.Query("page"), 1),
		Limit:  atoiDefault(c.Query("limit"), 0),
	}
	page, err := h.Svc.ListUsers(c.Request.Context(), callerID(c), q)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, page.Users, "ok", page.Pagination)
}

// UpdateUser PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req application.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateUser(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}

type upgradeRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// Upgrade POST /api/admin/upgrade promotes an account to admin.
func (h *AdminHandler) Upgrade(c *gin.Context) {
	var req upgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Upgrade(c.Request.Context(), callerID(c), req.UserID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user upgraded", nil)
}

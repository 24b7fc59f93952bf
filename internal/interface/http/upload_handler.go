package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
)

type UploadHandler struct {
	Svc    *application.UploadService
	Logger *logrus.Logger
}

func NewUploadHandler(svc *application.UploadService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{Svc: svc, Logger: logger}
}

// Image POST /api/uploads/image accepts a multipart "file" field and returns
// the public URL to put into a listing's imageUrl.
func (h *UploadHandler) Image(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadImage(c.Request.Context(), callerID(c),
		fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "uploaded", nil)
}

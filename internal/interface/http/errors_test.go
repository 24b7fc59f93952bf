package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/application"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", application.ErrValidation, http.StatusBadRequest, "invalid input"},
		{"unauthenticated", application.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{"bad credentials", application.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", application.ErrForbidden, http.StatusForbidden, "permission denied"},
		{"not found", application.ErrNotFound, http.StatusNotFound, "not found"},
		{"conflict", application.ErrConflict, http.StatusBadRequest, "already exists"},
		{"expired", application.ErrExpired, http.StatusBadRequest, "listing expired"},
		{"unknown", errors.New("pq: out of disk"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, nil, tc.err)

			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Success {
				t.Error("error envelope reports success")
			}
			if body.Message != tc.message {
				t.Errorf("message = %q, want %q", body.Message, tc.message)
			}
			if !c.IsAborted() {
				t.Error("error response must abort the handler chain")
			}
		})
	}
}

func TestRespondErrorHidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, nil, errors.New("password=hunter2 leaked into an error"))

	if strings.Contains(w.Body.String(), "hunter2") {
		t.Errorf("internal error detail leaked to the client: %s", w.Body.String())
	}
}

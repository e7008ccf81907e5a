package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantBody   string
		aborted    bool
	}{
		{
			name:       "error",
			write:      func(c *gin.Context) { Error(c, http.StatusBadRequest, "CNR number is required") },
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"CNR number is required"}`,
		},
		{
			name:       "abort",
			write:      func(c *gin.Context) { Abort(c, http.StatusForbidden, "Access denied") },
			wantStatus: http.StatusForbidden,
			wantBody:   `{"success":false,"error":"Access denied"}`,
			aborted:    true,
		},
		{
			name:       "message",
			write:      func(c *gin.Context) { Message(c, http.StatusOK, "User deleted successfully") },
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"User deleted successfully"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.aborted, c.IsAborted())
		})
	}
}

package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/internal/common"
)

func TestWriteError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", common.NewAppError("VALIDATION_ERROR", "file too large", common.ErrValidation), http.StatusBadRequest},
		{"invalid input", common.ErrInvalidInput, http.StatusBadRequest},
		{"not found", common.ErrNotFound, http.StatusNotFound},
		{"conflict", common.NewAppError("CONFLICT", "analysis already in progress", common.ErrConflict), http.StatusConflict},
		{"internal", errors.New("pg connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeError(c, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestWriteError_UsesAppErrorMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeError(c, common.NewAppError("VALIDATION_ERROR", "only PDF and DOCX are accepted", common.ErrValidation))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only PDF and DOCX are accepted")
	assert.NotContains(t, w.Body.String(), "VALIDATION_ERROR")
}

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/quoteserver/internal/errkind"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondNotFound(c, "quote")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"quote not found"}`, w.Body.String())
}

func TestRespondInternalError_HidesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondInternalError(c, errors.New("secret path /var/db"), "test")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRespondLookupError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", errkind.E(errkind.NotFound, "get quote", nil), http.StatusNotFound},
		{"store io", errkind.E(errkind.StoreIO, "get quote", errors.New("io")), http.StatusInternalServerError},
		{"store init", errkind.E(errkind.StoreInit, "open", errors.New("io")), http.StatusInternalServerError},
		{"source read", errkind.E(errkind.SourceRead, "read", errors.New("io")), http.StatusInternalServerError},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondLookupError(c, tt.err, "test")

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

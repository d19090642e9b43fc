package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fit4ever/fit4ever-server/internal/apperrors"
	"github.com/fit4ever/fit4ever-server/internal/model"
	"github.com/fit4ever/fit4ever-server/internal/testutil"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"api error passes through", apperrors.NewErrForbidden(), http.StatusForbidden, `{"error":"forbidden"}`},
		{"wrapped api error", errors.Join(apperrors.NewErrEmailTaken()), http.StatusConflict, `{"error":"an account with this email already exists"}`},
		{"not found", model.ErrNotFound, http.StatusNotFound, `{"error":"record not found"}`},
		{"unexpected error hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			handleError(c, testutil.MakeNoopLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

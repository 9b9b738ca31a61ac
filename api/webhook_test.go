package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("YOUR_SECOND_NUMBER", "447700900000")

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rr := httptest.NewRecorder()
		Handler(rr, httptest.NewRequest(method, "/webhooks/answer", nil))

		assert.Equal(t, http.StatusOK, rr.Code, method)
		assert.JSONEq(t,
			`[{"action":"connect","endpoint":[{"type":"phone","number":"447700900000"}]}]`,
			rr.Body.String())
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/submit", RateLimitByIP(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// the bucket holds a burst of 20; a tight loop of 30 must exhaust it
	var tooMany int
	first := do()
	require.Equal(t, http.StatusOK, first.Code)
	for i := 0; i < 29; i++ {
		if w := do(); w.Code == http.StatusTooManyRequests {
			tooMany++
			assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
		}
	}
	assert.GreaterOrEqual(t, tooMany, 1)

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.RemoteAddr = "198.51.100.9:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

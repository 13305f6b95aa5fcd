package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestRateLimiterBlocksBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rate.Every(time.Minute), 1)
	defer rl.Stop()

	r := gin.New()
	r.POST("/ui/test", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/ui/test", nil))
	if first.Code != http.StatusAccepted {
		t.Fatalf("first request returned %d", first.Code)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/ui/test", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request returned %d, want 429", second.Code)
	}
}

func TestSecurityHeadersAppliedToGET(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET returned %d", w.Code)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing nosniff header")
	}
	if w.Header().Get("X-Frame-Options") != "SAMEORIGIN" {
		t.Fatalf("missing frame options header")
	}
}

func TestMutationConfinedToUIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders())
	r.POST("/ui/navigate", func(c *gin.Context) { c.Status(http.StatusAccepted) })
	r.POST("/other", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := httptest.NewRecorder()
	r.ServeHTTP(allowed, httptest.NewRequest(http.MethodPost, "/ui/navigate", nil))
	if allowed.Code != http.StatusAccepted {
		t.Fatalf("POST /ui/navigate returned %d", allowed.Code)
	}

	blocked := httptest.NewRecorder()
	r.ServeHTTP(blocked, httptest.NewRequest(http.MethodPost, "/other", nil))
	if blocked.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /other returned %d, want 405", blocked.Code)
	}
}

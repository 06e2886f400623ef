package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"noteful/services"
	"noteful/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.JWTSecret = "middleware-test-secret"
	utils.JWTExpiry = time.Hour
	os.Exit(m.Run())
}

func setupGuardedRouter() *gin.Engine {
	router := gin.New()
	router.Use(AuthMiddleware())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString("user_id"),
			"username": c.GetString("username"),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	validToken, err := services.GenerateToken("64f000000000000000000001", "alice")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	otherSecret := utils.JWTSecret
	utils.JWTSecret = "some-other-secret"
	foreignToken, err := services.GenerateToken("64f000000000000000000001", "alice")
	utils.JWTSecret = otherSecret
	if err != nil {
		t.Fatalf("generating foreign token: %v", err)
	}

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + validToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong signature", "Bearer " + foreignToken, http.StatusUnauthorized},
	}

	router := setupGuardedRouter()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, w.Code, w.Body.String())
			}
			if tc.expectedCode == http.StatusOK {
				if body := w.Body.String(); !containsAll(body, "alice", "64f000000000000000000001") {
					t.Errorf("claims not propagated to the handler: %s", body)
				}
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expiry := utils.JWTExpiry
	utils.JWTExpiry = -time.Minute
	token, err := services.GenerateToken("64f000000000000000000001", "alice")
	utils.JWTExpiry = expiry
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	router := setupGuardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

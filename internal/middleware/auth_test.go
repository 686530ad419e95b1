package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/consultdesk/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("consultdesk-middleware-test-secret")
}

func protectedDashboard() *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired())
	router.GET("/api/dashboard/stats", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return router
}

func TestAuthRequired_NoHeader(t *testing.T) {
	router := protectedDashboard()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_InvalidFormat(t *testing.T) {
	router := protectedDashboard()

	testCases := []string{
		"InvalidToken",
		"Basic token123",
		"Bearer",
	}

	for _, authHeader := range testCases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/dashboard/stats", nil)
		req.Header.Set("Authorization", authHeader)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", authHeader, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := protectedDashboard()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	token, _ := utils.GenerateToken(7, "consultant", "user", 24)

	router := gin.New()
	router.Use(AuthRequired())
	router.GET("/api/auth/me", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
			"role":     GetRole(c),
		})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func adminGatedClients(role string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(ContextRole, role)
		}
		c.Next()
	})
	router.Use(AdminRequired())
	router.POST("/api/clients", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return router
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"no role", "", http.StatusForbidden},
		{"regular user", "user", http.StatusForbidden},
		{"admin", "admin", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/clients", nil)
			adminGatedClients(tt.role).ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("role %q: expected status %d, got %d", tt.role, tt.wantCode, w.Code)
			}
		})
	}
}

func TestContextAccessors_OutsideAuthenticatedRequest(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if id := GetUserID(c); id != 0 {
		t.Errorf("expected 0 for missing user_id, got %d", id)
	}
	if name := GetUsername(c); name != "" {
		t.Errorf("expected empty username, got %q", name)
	}
	if role := GetRole(c); role != "" {
		t.Errorf("expected empty role, got %q", role)
	}
}

func TestContextAccessors_AfterClaimsSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextUserID, uint(42))
	c.Set(ContextUsername, "consultant")
	c.Set(ContextRole, "admin")

	if id := GetUserID(c); id != 42 {
		t.Errorf("GetUserID = %d, expected 42", id)
	}
	if name := GetUsername(c); name != "consultant" {
		t.Errorf("GetUsername = %q, expected %q", name, "consultant")
	}
	if role := GetRole(c); role != "admin" {
		t.Errorf("GetRole = %q, expected %q", role, "admin")
	}
}

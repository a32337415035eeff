package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hirewire/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJWTAuthPartyMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/me", JWTAuthPartyMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, PartyID(c)+"/"+c.GetString(RoleKey))
	})

	token, err := utils.GenerateToken("rec-1", "proposer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	expired, _ := utils.GenerateToken("rec-1", "proposer", -time.Hour)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer " + token, http.StatusOK, "rec-1/proposer"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.POST("/confirm", JWTAuthPartyMiddleware(), RequireRole(RoleResponder), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		role   string
		status int
	}{
		{RoleResponder, http.StatusOK},
		{RoleProposer, http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run("role="+tt.role, func(t *testing.T) {
			token, err := utils.GenerateToken("party-1", tt.role, time.Hour)
			if err != nil {
				t.Fatalf("GenerateToken: %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, "/confirm", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(NewRateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do("1.1.1.1") != http.StatusNoContent || do("1.1.1.1") != http.StatusNoContent {
		t.Fatal("first two requests should pass")
	}
	if got := do("1.1.1.1"); got != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", got)
	}
	if got := do("2.2.2.2"); got != http.StatusNoContent {
		t.Errorf("other client status = %d, want 204", got)
	}
}

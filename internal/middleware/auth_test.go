package middleware

import (
	"edupiyasa_backend/internal/config"
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func testRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api")
	group.Use(AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func tokenFor(t *testing.T, cfg *config.Config, role model.UserRole) string {
	t.Helper()
	user := &model.User{Role: role, Email: "u@example.com"}
	user.ID = 1
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg)

	tests := []struct {
		name       string
		authHeader string
		query      string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + tokenFor(t, cfg, model.Student), "", http.StatusOK},
		{"token via query param", "", "?token=" + tokenFor(t, cfg, model.Student), http.StatusOK},
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/ping"+tt.query, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name       string
		allowed    []model.UserRole
		role       model.UserRole
		wantStatus int
	}{
		{"teacher passes teacher gate", []model.UserRole{model.Teacher}, model.Teacher, http.StatusOK},
		{"student blocked at teacher gate", []model.UserRole{model.Teacher}, model.Student, http.StatusForbidden},
		{"admin passes every gate", []model.UserRole{model.Teacher}, model.Admin, http.StatusOK},
		{"student passes student gate", []model.UserRole{model.Student}, model.Student, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(cfg, tt.allowed...)
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, tt.role))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

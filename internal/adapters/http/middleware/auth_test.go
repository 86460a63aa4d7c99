package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/delivery-cost-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/delivery-cost-service/internal/platform/config"
)

func TestClaims_Scopes(t *testing.T) {
	claims := &Claims{Subject: "u1", Scopes: []string{"delivery:quote", "delivery:batch"}}

	assert.True(t, claims.HasScope("delivery:batch"))
	assert.False(t, claims.HasScope("delivery:admin"))
	assert.True(t, claims.HasAnyScope("delivery:admin", "delivery:batch"))
	assert.False(t, claims.HasAnyScope("delivery:admin"))
	assert.False(t, claims.HasAnyScope())
}

func TestExtractClaims(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.AuthConfig
		headers map[string]string
		want    *Claims
	}{
		{
			name:    "default headers",
			cfg:     nil,
			headers: map[string]string{"X-User-ID": "user-1", "X-User-Scopes": "delivery:quote  delivery:batch"},
			want:    &Claims{Subject: "user-1", Scopes: []string{"delivery:quote", "delivery:batch"}},
		},
		{
			name:    "configured headers",
			cfg:     &config.AuthConfig{SubjectHeader: "X-Sub", ScopesHeader: "X-Scp"},
			headers: map[string]string{"X-Sub": "svc-7", "X-Scp": "delivery:admin", "X-User-ID": "ignored"},
			want:    &Claims{Subject: "svc-7", Scopes: []string{"delivery:admin"}},
		},
		{
			name:    "no headers",
			cfg:     &config.AuthConfig{},
			headers: nil,
			want:    &Claims{Subject: "", Scopes: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			got := ExtractClaims(c, tt.cfg)
			assert.Equal(t, tt.want.Subject, got.Subject)
			assert.ElementsMatch(t, tt.want.Scopes, got.Scopes)
		})
	}
}

func authRouter(cfg *config.AuthConfig) *gin.Engine {
	router := gin.New()
	protected := router.Group("", RequireAuth(cfg))
	protected.POST("/quote", func(c *gin.Context) {
		c.String(http.StatusOK, GetClaims(c).Subject)
	})
	protected.POST("/batch", RequireAnyScope(cfg, "delivery:batch", "delivery:admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func TestRequireAuth(t *testing.T) {
	router := authRouter(&config.AuthConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quote", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeUnauthorized)

	req := httptest.NewRequest(http.MethodPost, "/quote", nil)
	req.Header.Set("X-User-ID", "user-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestRequireAnyScope(t *testing.T) {
	tests := []struct {
		name   string
		scopes string
		want   int
	}{
		{"batch scope", "delivery:batch", http.StatusOK},
		{"admin scope", "delivery:quote delivery:admin", http.StatusOK},
		{"missing scope", "delivery:quote", http.StatusForbidden},
		{"no scopes", "", http.StatusForbidden},
	}

	router := authRouter(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/batch", nil)
			req.Header.Set("X-User-ID", "user-1")
			req.Header.Set("X-User-Scopes", tt.scopes)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAnyScope_WithoutPriorAuth(t *testing.T) {
	router := gin.New()
	router.GET("/admin", RequireAnyScope(nil, "delivery:admin"), func(c *gin.Context) {
		require.NotNil(t, GetClaims(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-User-Scopes", "delivery:admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubValidator map[string]domain.Actor

func (s stubValidator) ValidateToken(token string) (domain.Actor, error) {
	actor, ok := s[token]
	if !ok {
		return domain.Actor{}, domain.ErrInvalidToken
	}
	return actor, nil
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(stubValidator{
		"creator-token":  {ID: 1, Role: domain.RoleCreator},
		"marketer-token": {ID: 2, Role: domain.RoleMarketer},
	})

	r := gin.New()
	r.Use(Logger(zap.NewNop()), Metrics())
	r.GET("/whoami", m.RequireAuth(), func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	r.GET("/marketers", m.RequireAuth(), m.RequireRole(domain.RoleMarketer), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic creator-token", want: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer creator-token", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
		})
	}
}

func TestRequireAuth_SetsActor(t *testing.T) {
	r := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer marketer-token")
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 2, "role": "marketer"}`, w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))
}

func TestRequireRole(t *testing.T) {
	r := newTestEngine()

	for token, want := range map[string]int{
		"creator-token":  http.StatusForbidden,
		"marketer-token": http.StatusNoContent,
	} {
		req := httptest.NewRequest(http.MethodGet, "/marketers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, token)
	}
}

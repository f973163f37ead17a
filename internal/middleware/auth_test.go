package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fair-api/internal/domain"
)

type fakeResolver struct {
	sessions    map[string]*domain.Participant
	dev         *domain.Participant
	resolveErr  error
	devRequests int
}

func (f *fakeResolver) ResolveSession(ctx context.Context, token string) (*domain.Participant, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.sessions[token], nil
}

func (f *fakeResolver) DevParticipant(ctx context.Context) (*domain.Participant, error) {
	f.devRequests++
	return f.dev, nil
}

func participantWithRole(role domain.Role) *domain.Participant {
	return &domain.Participant{BaseModel: domain.BaseModel{ID: uuid.New()}, Role: role}
}

func authRouter(resolver SessionResolver, devFallback bool, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionAuth(resolver, devFallback, zap.NewNop()))
	handlers := append(guards, func(c *gin.Context) {
		p, ok := GetParticipant(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"role": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": p.Role.String()})
	})
	router.GET("/probe", handlers...)
	return router
}

func doProbe(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func roleOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["role"]
}

func TestSessionAuth_ResolvesBearerToken(t *testing.T) {
	resolver := &fakeResolver{sessions: map[string]*domain.Participant{
		"tok-op": participantWithRole(domain.RoleBoothOperator),
	}}
	router := authRouter(resolver, false)

	w := doProbe(router, "tok-op")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BOOTH_OPERATOR", roleOf(t, w))

	// unknown and missing tokens continue anonymously
	assert.Equal(t, "", roleOf(t, doProbe(router, "unknown")))
	assert.Equal(t, "", roleOf(t, doProbe(router, "")))
	assert.Equal(t, 0, resolver.devRequests)
}

func TestSessionAuth_DevFallback(t *testing.T) {
	resolver := &fakeResolver{dev: participantWithRole(domain.RoleAdmin)}
	router := authRouter(resolver, true)

	assert.Equal(t, "ADMIN", roleOf(t, doProbe(router, "")))
	assert.Equal(t, "ADMIN", roleOf(t, doProbe(router, "unknown")))
	assert.Equal(t, 2, resolver.devRequests)
}

func TestSessionAuth_ResolverError(t *testing.T) {
	router := authRouter(&fakeResolver{resolveErr: errors.New("db down")}, false)

	w := doProbe(router, "tok")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRequireRole(t *testing.T) {
	resolver := &fakeResolver{sessions: map[string]*domain.Participant{
		"p":  participantWithRole(domain.RoleParticipant),
		"op": participantWithRole(domain.RoleBoothOperator),
		"ad": participantWithRole(domain.RoleAdmin),
	}}

	tests := []struct {
		name     string
		required domain.Role
		token    string
		want     int
	}{
		{"anonymous", domain.RoleParticipant, "", http.StatusUnauthorized},
		{"participant for operator route", domain.RoleBoothOperator, "p", http.StatusForbidden},
		{"operator for operator route", domain.RoleBoothOperator, "op", http.StatusOK},
		{"admin implies operator", domain.RoleBoothOperator, "ad", http.StatusOK},
		{"operator for admin route", domain.RoleAdmin, "op", http.StatusForbidden},
		{"admin for admin route", domain.RoleAdmin, "ad", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authRouter(resolver, false, RequireRole(tt.required))
			assert.Equal(t, tt.want, doProbe(router, tt.token).Code)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	resolver := &fakeResolver{sessions: map[string]*domain.Participant{
		"p": participantWithRole(domain.RoleParticipant),
	}}
	router := authRouter(resolver, false, RequireAuth())

	w := doProbe(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
	assert.Equal(t, http.StatusOK, doProbe(router, "p").Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("abc"))
}

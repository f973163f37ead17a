package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fair-api/internal/domain"
	"fair-api/internal/response"
)

const participantKey = "participant"

// SessionResolver looks up the participant behind a session token
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.Participant, error)
	DevParticipant(ctx context.Context) (*domain.Participant, error)
}

// SessionAuth attaches the participant for a bearer token when one resolves.
// It never rejects a request by itself; RequireAuth and RequireRole do that.
func SessionAuth(resolver SessionResolver, devFallback bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var participant *domain.Participant
		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			p, err := resolver.ResolveSession(ctx, token)
			if err != nil {
				logger.Error("Failed to resolve session", zap.Error(err))
				response.AbortWithError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
				return
			}
			participant = p
		}

		if participant == nil && devFallback {
			p, err := resolver.DevParticipant(ctx)
			if err != nil {
				logger.Error("Failed to provision dev participant", zap.Error(err))
				response.AbortWithError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
				return
			}
			participant = p
		}

		if participant != nil {
			SetParticipant(c, participant)
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SetParticipant attaches p as the request identity
func SetParticipant(c *gin.Context, p *domain.Participant) {
	c.Set(participantKey, p)
}

// GetParticipant returns the participant attached by SessionAuth
func GetParticipant(c *gin.Context) (*domain.Participant, bool) {
	v, exists := c.Get(participantKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*domain.Participant)
	return p, ok && p != nil
}

// RequireAuth rejects requests without a resolved participant
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetParticipant(c); !ok {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers whose role ranks below required
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetParticipant(c)
		if !ok {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !p.Role.AtLeast(required) {
			response.AbortWithError(c, http.StatusForbidden, response.ErrCodeForbidden,
				"Requires role "+required.String())
			return
		}
		c.Next()
	}
}

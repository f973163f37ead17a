package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fair-api/internal/domain"
	"fair-api/internal/response"
)

func requireAppError(t *testing.T, err error, code string) *response.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected *response.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func newParticipant(role domain.Role) *domain.Participant {
	return &domain.Participant{
		BaseModel:    domain.BaseModel{ID: uuid.New()},
		SessionToken: uuid.NewString(),
		Role:         role,
	}
}

func TestRemoveDuplicateUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	require.Equal(t, []uuid.UUID{a, b}, removeDuplicateUUIDs([]uuid.UUID{a, b, a, b, a}))
	require.Empty(t, removeDuplicateUUIDs(nil))
}

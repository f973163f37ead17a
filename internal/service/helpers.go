package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/response"
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

func keywordResponses(keywords []domain.GrowthKeyword) []dto.KeywordResponse {
	out := make([]dto.KeywordResponse, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, dto.KeywordResponse{ID: k.ID, Name: k.Name, NameEn: k.NameEn})
	}
	return out
}

// removeDuplicateUUIDs keeps the first occurrence of each ID
func removeDuplicateUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// lookupError maps a FindByID failure to NOT_FOUND or INTERNAL_ERROR
func lookupError(err error, notFoundMsg, failMsg string) *response.AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewAppError(response.ErrCodeNotFound, notFoundMsg, "")
	}
	return response.NewAppError(response.ErrCodeInternal, failMsg, err.Error())
}

func internalError(msg string, err error) *response.AppError {
	return response.NewAppError(response.ErrCodeInternal, msg, err.Error())
}

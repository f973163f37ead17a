package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateLearningRecordRequest represents the request to write a reflection
type CreateLearningRecordRequest struct {
	BoothID    uuid.UUID   `json:"boothId" binding:"required" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Content    string      `json:"content" binding:"required" example:"We validated the riskiest assumption first."`
	KeywordIDs []uuid.UUID `json:"keywordIds" binding:"required,min=1"`
}

// UpdateLearningRecordRequest represents a partial record update
// @Description Omitted or null fields stay unchanged. keywordIds, when present, replaces the whole set.
type UpdateLearningRecordRequest struct {
	Content    *string      `json:"content" binding:"omitempty,min=1"`
	KeywordIDs *[]uuid.UUID `json:"keywordIds"`
}

// LearningRecordResponse represents a record with its resonance summary for the caller
type LearningRecordResponse struct {
	ID                    uuid.UUID         `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	BoothID               uuid.UUID         `json:"boothId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	BoothName             string            `json:"boothName" example:"Smart Farm"`
	ParticipantID         uuid.UUID         `json:"participantId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	ParticipantName       *string           `json:"participantName"`
	Content               string            `json:"content"`
	Keywords              []KeywordResponse `json:"keywords"`
	SupportCount          int64             `json:"supportCount" example:"3"`
	SharedExperienceCount int64             `json:"sharedExperienceCount" example:"1"`
	MyResonances          []string          `json:"myResonances" example:"SUPPORT"`
	CreatedAt             time.Time         `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt             time.Time         `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
}

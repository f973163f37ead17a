package dto

import "github.com/google/uuid"

// BoothListResponse is one row of the public booth list
type BoothListResponse struct {
	ID           uuid.UUID         `json:"id" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Code         string            `json:"code" example:"A001"`
	Name         string            `json:"name" example:"Smart Farm"`
	LocationDesc *string           `json:"locationDesc" example:"Hall A, left wall"`
	Keywords     []KeywordResponse `json:"keywords"`
	CrowdLevel   string            `json:"crowdLevel" example:"LOW"`
	CrowdCount   int64             `json:"crowdCount" example:"3"`
}

// BoothDetailResponse adds the booth story to the list fields
type BoothDetailResponse struct {
	ID              uuid.UUID         `json:"id" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Code            string            `json:"code" example:"A001"`
	Name            string            `json:"name" example:"Smart Farm"`
	IdeaSummary     *string           `json:"ideaSummary"`
	WrongAssumption *string           `json:"wrongAssumption"`
	TrialMoments    *string           `json:"trialMoments"`
	LearningPivot   *string           `json:"learningPivot"`
	CurrentState    *string           `json:"currentState"`
	LocationDesc    *string           `json:"locationDesc"`
	Keywords        []KeywordResponse `json:"keywords"`
	CrowdLevel      string            `json:"crowdLevel" example:"MEDIUM"`
	CrowdCount      int64             `json:"crowdCount" example:"12"`
}

// CreateBoothRequest represents the request to create a booth
type CreateBoothRequest struct {
	Code            string      `json:"code" binding:"required,max=10" example:"A001"`
	Name            string      `json:"name" binding:"required,max=200" example:"Smart Farm"`
	IdeaSummary     *string     `json:"ideaSummary"`
	WrongAssumption *string     `json:"wrongAssumption"`
	TrialMoments    *string     `json:"trialMoments"`
	LearningPivot   *string     `json:"learningPivot"`
	CurrentState    *string     `json:"currentState"`
	LocationDesc    *string     `json:"locationDesc" binding:"omitempty,max=200"`
	KeywordIDs      []uuid.UUID `json:"keywordIds"`
}

// UpdateBoothRequest represents a partial booth update.
// @Description Omitted or null fields stay unchanged. keywordIds, when present, replaces the whole set.
type UpdateBoothRequest struct {
	Name            *string      `json:"name" binding:"omitempty,min=1,max=200"`
	IdeaSummary     *string      `json:"ideaSummary"`
	WrongAssumption *string      `json:"wrongAssumption"`
	TrialMoments    *string      `json:"trialMoments"`
	LearningPivot   *string      `json:"learningPivot"`
	CurrentState    *string      `json:"currentState"`
	LocationDesc    *string      `json:"locationDesc" binding:"omitempty,max=200"`
	KeywordIDs      *[]uuid.UUID `json:"keywordIds"`
}

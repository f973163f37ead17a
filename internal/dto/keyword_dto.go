package dto

import "github.com/google/uuid"

// KeywordResponse represents a growth keyword
type KeywordResponse struct {
	ID     uuid.UUID `json:"id" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Name   string    `json:"name" example:"협업"`
	NameEn *string   `json:"nameEn" example:"Collaboration"`
}

// CreateKeywordRequest represents the request to create a keyword
type CreateKeywordRequest struct {
	Name      string  `json:"name" binding:"required,max=50" example:"몰입"`
	NameEn    *string `json:"nameEn" binding:"omitempty,max=50" example:"Focus"`
	SortOrder int     `json:"sortOrder" example:"6"`
}

// UpdateKeywordRequest represents a partial keyword update
// @Description Omitted or null fields stay unchanged
type UpdateKeywordRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=50" example:"몰입"`
	NameEn    *string `json:"nameEn" binding:"omitempty,max=50" example:"Focus"`
	SortOrder *int    `json:"sortOrder" example:"2"`
	IsActive  *bool   `json:"isActive" example:"false"`
}

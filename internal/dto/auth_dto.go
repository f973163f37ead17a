package dto

import "github.com/google/uuid"

// QRAuthRequest represents a QR login attempt
// @Description qrToken is either a booth QR token or an event entry token
type QRAuthRequest struct {
	QRToken string `json:"qrToken" binding:"required" example:"test-entry-qr"`
}

// AuthResponse carries the new session
// @Description sessionToken is sent back as "Authorization: Bearer <sessionToken>"
type AuthResponse struct {
	SessionToken   string  `json:"sessionToken" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Role           string  `json:"role" example:"PARTICIPANT"`
	OnboardingDone bool    `json:"onboardingDone" example:"false"`
	DisplayName    *string `json:"displayName" example:"Booth A001"`
}

// ParticipantResponse represents the caller's own profile
type ParticipantResponse struct {
	ID             uuid.UUID `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	DisplayName    *string   `json:"displayName"`
	Role           string    `json:"role" example:"PARTICIPANT"`
	OnboardingDone bool      `json:"onboardingDone" example:"true"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// QRCheckInRequest checks in by scanning the booth QR code
type QRCheckInRequest struct {
	QRToken string `json:"qrToken" binding:"required" example:"5b1c7a0e-3f0d-4c55-8f0a-2d7b3c1e9a44"`
}

// CodeCheckInRequest checks in by typing the booth code
type CodeCheckInRequest struct {
	BoothCode string `json:"boothCode" binding:"required,max=10" example:"A001"`
}

// CheckInResponse represents a stored check-in
type CheckInResponse struct {
	ID          uuid.UUID `json:"id" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	BoothID     uuid.UUID `json:"boothId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	BoothCode   string    `json:"boothCode" example:"A001"`
	BoothName   string    `json:"boothName" example:"Smart Farm"`
	Method      string    `json:"method" example:"QR"`
	CheckedInAt time.Time `json:"checkedInAt" example:"2024-01-15T10:30:00Z"`
}

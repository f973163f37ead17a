package dto

import (
	"time"

	"github.com/google/uuid"
)

// ToggleResonanceRequest flips one resonance type on a record
type ToggleResonanceRequest struct {
	RecordID uuid.UUID `json:"recordId" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Type     string    `json:"type" binding:"required,oneof=SUPPORT SHARED_EXPERIENCE" example:"SUPPORT"`
}

// ResonanceResponse reports the state after a toggle
// @Description toggled=false means the resonance was removed; id is the removed row and createdAt is null
type ResonanceResponse struct {
	ID        *uuid.UUID `json:"id"`
	RecordID  uuid.UUID  `json:"recordId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Type      string     `json:"type" example:"SUPPORT"`
	Toggled   bool       `json:"toggled" example:"true"`
	CreatedAt *time.Time `json:"createdAt"`
}

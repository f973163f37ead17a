package domain

import "time"

// DevParticipantToken identifies the fallback identity used when dev auth fallback is enabled
const DevParticipantToken = "dev-participant"

// Participant is an attendee or staff member authenticated by QR code
type Participant struct {
	BaseModel
	SessionToken   string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_participants_session_token" json:"-"`
	Role           Role      `gorm:"type:varchar(20);not null" json:"role"`
	DisplayName    *string   `gorm:"type:varchar(100)" json:"displayName"`
	OnboardingDone bool      `gorm:"not null;default:false" json:"onboardingDone"`
	LastActiveAt   time.Time `gorm:"not null" json:"lastActiveAt"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

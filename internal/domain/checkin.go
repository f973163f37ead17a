package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckInMethod records how the participant identified the booth
type CheckInMethod string

const (
	CheckInMethodQR     CheckInMethod = "QR"
	CheckInMethodManual CheckInMethod = "MANUAL"
)

// CheckIn records a participant's one-time visit to a booth
type CheckIn struct {
	BaseModel
	ParticipantID uuid.UUID     `gorm:"type:char(36);not null;uniqueIndex:uq_check_ins_participant_booth" json:"participantId"`
	BoothID       uuid.UUID     `gorm:"type:char(36);not null;uniqueIndex:uq_check_ins_participant_booth;index:idx_check_ins_booth_time" json:"boothId"`
	Method        CheckInMethod `gorm:"type:varchar(10);not null" json:"method"`
	CheckedInAt   time.Time     `gorm:"not null;index:idx_check_ins_booth_time" json:"checkedInAt"`
	Booth         Booth         `gorm:"foreignKey:BoothID" json:"booth,omitempty"`
}

// TableName specifies the table name for CheckIn
func (CheckIn) TableName() string {
	return "check_ins"
}

package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ResonanceType is the kind of reaction left on a learning record
type ResonanceType string

const (
	ResonanceSupport          ResonanceType = "SUPPORT"
	ResonanceSharedExperience ResonanceType = "SHARED_EXPERIENCE"
)

// ParseResonanceType validates a client supplied type
func ParseResonanceType(s string) (ResonanceType, error) {
	switch ResonanceType(s) {
	case ResonanceSupport, ResonanceSharedExperience:
		return ResonanceType(s), nil
	}
	return "", fmt.Errorf("unknown resonance type %q", s)
}

// Resonance is one participant's reaction of one type on one record
type Resonance struct {
	BaseModel
	RecordID      uuid.UUID     `gorm:"type:char(36);not null;uniqueIndex:uq_resonances_record_participant_type;index:idx_resonances_record_id" json:"recordId"`
	ParticipantID uuid.UUID     `gorm:"type:char(36);not null;uniqueIndex:uq_resonances_record_participant_type" json:"participantId"`
	Type          ResonanceType `gorm:"type:varchar(20);not null;uniqueIndex:uq_resonances_record_participant_type" json:"type"`
}

// TableName specifies the table name for Resonance
func (Resonance) TableName() string {
	return "resonances"
}

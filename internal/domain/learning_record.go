package domain

import "github.com/google/uuid"

// LearningRecord is a participant's reflection written after visiting a booth
type LearningRecord struct {
	BaseModel
	ParticipantID uuid.UUID       `gorm:"type:char(36);not null;index:idx_learning_records_participant_id" json:"participantId"`
	BoothID       uuid.UUID       `gorm:"type:char(36);not null;index:idx_learning_records_booth_id" json:"boothId"`
	Content       string          `gorm:"type:text;not null" json:"content"`
	IsReleased    bool            `gorm:"not null;default:false" json:"isReleased"`
	Keywords      []GrowthKeyword `gorm:"many2many:learning_record_keywords;joinForeignKey:RecordID;joinReferences:KeywordID" json:"keywords,omitempty"`
	Booth         Booth           `gorm:"foreignKey:BoothID" json:"booth,omitempty"`
	Participant   Participant     `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}

// TableName specifies the table name for LearningRecord
func (LearningRecord) TableName() string {
	return "learning_records"
}

// AuthoredBy reports whether participantID wrote the record
func (r *LearningRecord) AuthoredBy(participantID uuid.UUID) bool {
	return r.ParticipantID == participantID
}

package domain

import "github.com/google/uuid"

// Booth is an exhibit that participants check into.
// Code and QRToken never change after creation.
type Booth struct {
	BaseModel
	Code            string          `gorm:"type:varchar(10);not null;uniqueIndex:uq_booths_code" json:"code"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	QRToken         string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_booths_qr_token" json:"-"`
	IdeaSummary     *string         `gorm:"type:text" json:"ideaSummary"`
	WrongAssumption *string         `gorm:"type:text" json:"wrongAssumption"`
	TrialMoments    *string         `gorm:"type:text" json:"trialMoments"`
	LearningPivot   *string         `gorm:"type:text" json:"learningPivot"`
	CurrentState    *string         `gorm:"type:text" json:"currentState"`
	LocationDesc    *string         `gorm:"type:varchar(200)" json:"locationDesc"`
	OperatorID      *uuid.UUID      `gorm:"type:char(36);index:idx_booths_operator_id" json:"operatorId"`
	IsActive        bool            `gorm:"not null;default:true" json:"isActive"`
	Keywords        []GrowthKeyword `gorm:"many2many:booth_keywords;joinForeignKey:BoothID;joinReferences:KeywordID" json:"keywords,omitempty"`
}

// TableName specifies the table name for Booth
func (Booth) TableName() string {
	return "booths"
}

// OperatedBy reports whether p is the booth's recorded operator
func (b *Booth) OperatedBy(participantID uuid.UUID) bool {
	return b.OperatorID != nil && *b.OperatorID == participantID
}

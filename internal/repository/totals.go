package repository

import (
	"context"

	"gorm.io/gorm"
)

// Totals feeds the business metrics collector from the entity tables
type Totals struct {
	booths       BoothRepository
	participants ParticipantRepository
	checkIns     CheckInRepository
	records      LearningRecordRepository
}

func NewTotals(db *gorm.DB) *Totals {
	return &Totals{
		booths:       NewBoothRepository(db),
		participants: NewParticipantRepository(db),
		checkIns:     NewCheckInRepository(db),
		records:      NewLearningRecordRepository(db),
	}
}

func (t *Totals) CountActiveBooths(ctx context.Context) (int64, error) {
	return t.booths.CountActive(ctx)
}

func (t *Totals) CountParticipants(ctx context.Context) (int64, error) {
	return t.participants.Count(ctx)
}

func (t *Totals) CountCheckIns(ctx context.Context) (int64, error) {
	return t.checkIns.Count(ctx)
}

func (t *Totals) CountLearningRecords(ctx context.Context) (int64, error) {
	return t.records.Count(ctx)
}

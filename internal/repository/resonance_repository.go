package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fair-api/internal/domain"
)

// ResonanceCounts holds per-type totals for one learning record
type ResonanceCounts map[domain.ResonanceType]int64

// ResonanceRepository defines the interface for resonance data access
type ResonanceRepository interface {
	Find(ctx context.Context, recordID, participantID uuid.UUID, resonanceType domain.ResonanceType) (*domain.Resonance, error)
	Create(ctx context.Context, resonance *domain.Resonance) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountsByRecords(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID]ResonanceCounts, error)
	TypesByParticipant(ctx context.Context, recordIDs []uuid.UUID, participantID uuid.UUID) (map[uuid.UUID][]domain.ResonanceType, error)
}

type resonanceRepositoryImpl struct {
	db *gorm.DB
}

// NewResonanceRepository creates a new instance of ResonanceRepository
func NewResonanceRepository(db *gorm.DB) ResonanceRepository {
	return &resonanceRepositoryImpl{db: db}
}

// Find returns nil, nil when the participant has no resonance of that type on the record
func (r *resonanceRepositoryImpl) Find(ctx context.Context, recordID, participantID uuid.UUID, resonanceType domain.ResonanceType) (*domain.Resonance, error) {
	var resonance domain.Resonance
	if err := r.db.WithContext(ctx).
		Where("record_id = ? AND participant_id = ? AND type = ?", recordID, participantID, resonanceType).
		First(&resonance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resonance, nil
}

func (r *resonanceRepositoryImpl) Create(ctx context.Context, resonance *domain.Resonance) error {
	return r.db.WithContext(ctx).Create(resonance).Error
}

func (r *resonanceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Resonance{}).Error
}

type recordTypeCount struct {
	RecordID uuid.UUID            `gorm:"column:record_id"`
	Type     domain.ResonanceType `gorm:"column:type"`
	Cnt      int64                `gorm:"column:cnt"`
}

// CountsByRecords totals resonances per record and type in one query
func (r *resonanceRepositoryImpl) CountsByRecords(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID]ResonanceCounts, error) {
	result := make(map[uuid.UUID]ResonanceCounts, len(recordIDs))
	if len(recordIDs) == 0 {
		return result, nil
	}

	var rows []recordTypeCount
	if err := r.db.WithContext(ctx).
		Model(&domain.Resonance{}).
		Select("record_id, type, COUNT(*) AS cnt").
		Where("record_id IN ?", recordIDs).
		Group("record_id, type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		if result[row.RecordID] == nil {
			result[row.RecordID] = ResonanceCounts{}
		}
		result[row.RecordID][row.Type] = row.Cnt
	}
	return result, nil
}

// TypesByParticipant returns which resonance types the participant left on each record
func (r *resonanceRepositoryImpl) TypesByParticipant(ctx context.Context, recordIDs []uuid.UUID, participantID uuid.UUID) (map[uuid.UUID][]domain.ResonanceType, error) {
	result := make(map[uuid.UUID][]domain.ResonanceType, len(recordIDs))
	if len(recordIDs) == 0 || participantID == uuid.Nil {
		return result, nil
	}

	var resonances []domain.Resonance
	if err := r.db.WithContext(ctx).
		Where("record_id IN ? AND participant_id = ?", recordIDs, participantID).
		Order("type ASC").
		Find(&resonances).Error; err != nil {
		return nil, err
	}

	for _, res := range resonances {
		result[res.RecordID] = append(result[res.RecordID], res.Type)
	}
	return result, nil
}

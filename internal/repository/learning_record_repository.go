package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fair-api/internal/domain"
)

// LearningRecordRepository defines the interface for learning record data access
type LearningRecordRepository interface {
	Create(ctx context.Context, record *domain.LearningRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.LearningRecord, error)
	FindByBooth(ctx context.Context, boothID uuid.UUID) ([]*domain.LearningRecord, error)
	FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.LearningRecord, error)
	Update(ctx context.Context, record *domain.LearningRecord, keywords *[]domain.GrowthKeyword) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type learningRecordRepositoryImpl struct {
	db *gorm.DB
}

// NewLearningRecordRepository creates a new instance of LearningRecordRepository
func NewLearningRecordRepository(db *gorm.DB) LearningRecordRepository {
	return &learningRecordRepositoryImpl{db: db}
}

func (r *learningRecordRepositoryImpl) Create(ctx context.Context, record *domain.LearningRecord) error {
	return r.db.WithContext(ctx).
		Omit("Keywords.*", "Booth", "Participant").
		Create(record).Error
}

func (r *learningRecordRepositoryImpl) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Booth").
		Preload("Participant")
}

func (r *learningRecordRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.LearningRecord, error) {
	var record domain.LearningRecord
	if err := r.withRelations(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByBooth lists records for a booth, newest first
func (r *learningRecordRepositoryImpl) FindByBooth(ctx context.Context, boothID uuid.UUID) ([]*domain.LearningRecord, error) {
	var records []*domain.LearningRecord
	if err := r.withRelations(ctx).
		Where("booth_id = ?", boothID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByParticipant lists a participant's own records, newest first
func (r *learningRecordRepositoryImpl) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.LearningRecord, error) {
	var records []*domain.LearningRecord
	if err := r.withRelations(ctx).
		Where("participant_id = ?", participantID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Update saves the record and optionally replaces its keyword set, atomically
func (r *learningRecordRepositoryImpl) Update(ctx context.Context, record *domain.LearningRecord, keywords *[]domain.GrowthKeyword) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(record).Error; err != nil {
			return err
		}
		if keywords != nil {
			if err := tx.Model(record).Association("Keywords").Replace(*keywords); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the record with its keyword links and resonances in one transaction
func (r *learningRecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM learning_record_keywords WHERE record_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", id).Delete(&domain.Resonance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.LearningRecord{}).Error
	})
}

func (r *learningRecordRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LearningRecord{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fair-api/internal/domain"
)

// ParticipantRepository defines the interface for participant data access
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindBySessionToken(ctx context.Context, token string) (*domain.Participant, error)
	Update(ctx context.Context, participant *domain.Participant) error
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

type participantRepositoryImpl struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new instance of ParticipantRepository
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepositoryImpl{db: db}
}

func (r *participantRepositoryImpl) Create(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// FindBySessionToken returns nil, nil when no participant holds the token
func (r *participantRepositoryImpl) FindBySessionToken(ctx context.Context, token string) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepositoryImpl) Update(ctx context.Context, participant *domain.Participant) error {
	return r.db.WithContext(ctx).Save(participant).Error
}

// TouchLastActive bumps last_active_at without rewriting the row
func (r *participantRepositoryImpl) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Participant{}).
		Where("id = ?", id).
		UpdateColumn("last_active_at", at).Error
}

func (r *participantRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Participant{}).Count(&count).Error
	return count, err
}

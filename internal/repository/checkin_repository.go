package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fair-api/internal/domain"
)

// CheckInRepository defines the interface for check-in data access
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *domain.CheckIn) error
	ExistsByParticipantAndBooth(ctx context.Context, participantID, boothID uuid.UUID) (bool, error)
	FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.CheckIn, error)
	CountByBoothSince(ctx context.Context, since time.Time) (map[uuid.UUID]int64, error)
	CountForBoothSince(ctx context.Context, boothID uuid.UUID, since time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type checkInRepositoryImpl struct {
	db *gorm.DB
}

// NewCheckInRepository creates a new instance of CheckInRepository
func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepositoryImpl{db: db}
}

func (r *checkInRepositoryImpl) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	return r.db.WithContext(ctx).Omit("Booth").Create(checkIn).Error
}

func (r *checkInRepositoryImpl) ExistsByParticipantAndBooth(ctx context.Context, participantID, boothID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.CheckIn{}).
		Where("participant_id = ? AND booth_id = ?", participantID, boothID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByParticipant lists a participant's check-ins, newest first, with the booth loaded
func (r *checkInRepositoryImpl) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.CheckIn, error) {
	var checkIns []*domain.CheckIn
	if err := r.db.WithContext(ctx).
		Preload("Booth").
		Where("participant_id = ?", participantID).
		Order("checked_in_at DESC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

type boothCount struct {
	BoothID uuid.UUID `gorm:"column:booth_id"`
	Cnt     int64     `gorm:"column:cnt"`
}

// CountByBoothSince groups check-ins at or after since by booth.
// Booths without check-ins are absent from the map.
func (r *checkInRepositoryImpl) CountByBoothSince(ctx context.Context, since time.Time) (map[uuid.UUID]int64, error) {
	var rows []boothCount
	if err := r.db.WithContext(ctx).
		Model(&domain.CheckIn{}).
		Select("booth_id, COUNT(*) AS cnt").
		Where("checked_in_at >= ?", since).
		Group("booth_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.BoothID] = row.Cnt
	}
	return counts, nil
}

func (r *checkInRepositoryImpl) CountForBoothSince(ctx context.Context, boothID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CheckIn{}).
		Where("booth_id = ? AND checked_in_at >= ?", boothID, since).
		Count(&count).Error
	return count, err
}

func (r *checkInRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CheckIn{}).Count(&count).Error
	return count, err
}

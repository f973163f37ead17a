package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fair-api/internal/domain"
)

// KeywordRepository defines the interface for growth keyword data access
type KeywordRepository interface {
	Create(ctx context.Context, keyword *domain.GrowthKeyword) error
	CreateBatch(ctx context.Context, keywords []domain.GrowthKeyword) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.GrowthKeyword, error)
	FindByName(ctx context.Context, name string) (*domain.GrowthKeyword, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.GrowthKeyword, error)
	ListActive(ctx context.Context) ([]*domain.GrowthKeyword, error)
	Update(ctx context.Context, keyword *domain.GrowthKeyword) error
	Count(ctx context.Context) (int64, error)
}

type keywordRepositoryImpl struct {
	db *gorm.DB
}

// NewKeywordRepository creates a new instance of KeywordRepository
func NewKeywordRepository(db *gorm.DB) KeywordRepository {
	return &keywordRepositoryImpl{db: db}
}

func (r *keywordRepositoryImpl) Create(ctx context.Context, keyword *domain.GrowthKeyword) error {
	return r.db.WithContext(ctx).Create(keyword).Error
}

func (r *keywordRepositoryImpl) CreateBatch(ctx context.Context, keywords []domain.GrowthKeyword) error {
	if len(keywords) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&keywords).Error
}

func (r *keywordRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.GrowthKeyword, error) {
	var keyword domain.GrowthKeyword
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&keyword).Error; err != nil {
		return nil, err
	}
	return &keyword, nil
}

// FindByName returns nil, nil when the name is free
func (r *keywordRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.GrowthKeyword, error) {
	var keyword domain.GrowthKeyword
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&keyword).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &keyword, nil
}

// FindByIDs ignores the active flag; unknown IDs are silently skipped
func (r *keywordRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.GrowthKeyword, error) {
	if len(ids) == 0 {
		return []domain.GrowthKeyword{}, nil
	}
	var keywords []domain.GrowthKeyword
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("sort_order ASC").
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (r *keywordRepositoryImpl) ListActive(ctx context.Context) ([]*domain.GrowthKeyword, error) {
	var keywords []*domain.GrowthKeyword
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (r *keywordRepositoryImpl) Update(ctx context.Context, keyword *domain.GrowthKeyword) error {
	return r.db.WithContext(ctx).Save(keyword).Error
}

func (r *keywordRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.GrowthKeyword{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fair-api/internal/domain"
)

// BoothRepository defines the interface for booth data access
type BoothRepository interface {
	Create(ctx context.Context, booth *domain.Booth) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booth, error)
	FindByCode(ctx context.Context, code string) (*domain.Booth, error)
	FindByQRToken(ctx context.Context, token string) (*domain.Booth, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ListActive(ctx context.Context) ([]*domain.Booth, error)
	Update(ctx context.Context, booth *domain.Booth, keywords *[]domain.GrowthKeyword) error
	ClaimOperator(ctx context.Context, boothID, operatorID uuid.UUID) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}

type boothRepositoryImpl struct {
	db *gorm.DB
}

// NewBoothRepository creates a new instance of BoothRepository
func NewBoothRepository(db *gorm.DB) BoothRepository {
	return &boothRepositoryImpl{db: db}
}

// Create inserts the booth together with its keyword links
func (r *boothRepositoryImpl) Create(ctx context.Context, booth *domain.Booth) error {
	return r.db.WithContext(ctx).
		Omit("Keywords.*").
		Create(booth).Error
}

// FindByID returns gorm.ErrRecordNotFound when the booth does not exist
func (r *boothRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booth, error) {
	var booth domain.Booth
	if err := r.db.WithContext(ctx).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id).
		First(&booth).Error; err != nil {
		return nil, err
	}
	return &booth, nil
}

// FindByCode returns nil, nil when no booth has the code
func (r *boothRepositoryImpl) FindByCode(ctx context.Context, code string) (*domain.Booth, error) {
	return r.findOne(ctx, "code = ?", code)
}

// FindByQRToken returns nil, nil when no booth has the token
func (r *boothRepositoryImpl) FindByQRToken(ctx context.Context, token string) (*domain.Booth, error) {
	return r.findOne(ctx, "qr_token = ?", token)
}

func (r *boothRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*domain.Booth, error) {
	var booth domain.Booth
	if err := r.db.WithContext(ctx).Where(query, arg).First(&booth).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booth, nil
}

func (r *boothRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Booth{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListActive returns active booths ordered by code
func (r *boothRepositoryImpl) ListActive(ctx context.Context) ([]*domain.Booth, error) {
	var booths []*domain.Booth
	if err := r.db.WithContext(ctx).
		Preload("Keywords", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&booths).Error; err != nil {
		return nil, err
	}
	return booths, nil
}

// Update saves scalar columns and, when keywords is non-nil, replaces the keyword
// set. Both happen in one transaction.
func (r *boothRepositoryImpl) Update(ctx context.Context, booth *domain.Booth, keywords *[]domain.GrowthKeyword) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(booth).Error; err != nil {
			return err
		}
		if keywords == nil {
			return nil
		}
		return tx.Model(booth).Association("Keywords").Replace(*keywords)
	})
}

// ClaimOperator sets the operator only if the booth has none. It reports whether the claim took effect.
func (r *boothRepositoryImpl) ClaimOperator(ctx context.Context, boothID, operatorID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Booth{}).
		Where("id = ? AND operator_id IS NULL", boothID).
		Update("operator_id", operatorID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *boothRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Booth{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

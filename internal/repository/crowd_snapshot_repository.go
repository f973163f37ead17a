package repository

import (
	"context"

	"gorm.io/gorm"

	"fair-api/internal/domain"
)

// CrowdSnapshotRepository persists the broadcaster's audit trail
type CrowdSnapshotRepository interface {
	CreateBatch(ctx context.Context, snapshots []domain.CrowdSnapshot) error
}

type crowdSnapshotRepositoryImpl struct {
	db *gorm.DB
}

// NewCrowdSnapshotRepository creates a new instance of CrowdSnapshotRepository
func NewCrowdSnapshotRepository(db *gorm.DB) CrowdSnapshotRepository {
	return &crowdSnapshotRepositoryImpl{db: db}
}

func (r *crowdSnapshotRepositoryImpl) CreateBatch(ctx context.Context, snapshots []domain.CrowdSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&snapshots, 100).Error
}

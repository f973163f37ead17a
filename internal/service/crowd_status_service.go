package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/repository"
)

// CrowdStatusService computes per-booth density from recent check-ins.
// The REST endpoint and the scheduled broadcaster share ComputeCurrentStatus.
type CrowdStatusService interface {
	ComputeCurrentStatus(ctx context.Context) (*dto.CrowdStatusBroadcast, error)
	CurrentCounts(ctx context.Context) (map[uuid.UUID]int64, error)
	CountForBooth(ctx context.Context, boothID uuid.UUID) (int64, error)
	LevelFor(count int64) domain.CrowdLevel
}

type crowdStatusServiceImpl struct {
	boothRepo   repository.BoothRepository
	checkInRepo repository.CheckInRepository
	thresholds  domain.CrowdThresholds
	window      time.Duration
	now         Clock
}

// NewCrowdStatusService creates a new instance of CrowdStatusService
func NewCrowdStatusService(
	boothRepo repository.BoothRepository,
	checkInRepo repository.CheckInRepository,
	thresholds domain.CrowdThresholds,
	window time.Duration,
) CrowdStatusService {
	return &crowdStatusServiceImpl{
		boothRepo:   boothRepo,
		checkInRepo: checkInRepo,
		thresholds:  thresholds,
		window:      window,
		now:         utcNow,
	}
}

func (s *crowdStatusServiceImpl) since() time.Time {
	return s.now().Add(-s.window)
}

// ComputeCurrentStatus returns every active booth ordered by code, including booths with no recent check-ins
func (s *crowdStatusServiceImpl) ComputeCurrentStatus(ctx context.Context) (*dto.CrowdStatusBroadcast, error) {
	counts, err := s.CurrentCounts(ctx)
	if err != nil {
		return nil, err
	}

	booths, err := s.boothRepo.ListActive(ctx)
	if err != nil {
		return nil, internalError("Failed to load booths", err)
	}

	statuses := make([]dto.BoothCrowdStatus, 0, len(booths))
	for _, b := range booths {
		count := counts[b.ID]
		statuses = append(statuses, dto.BoothCrowdStatus{
			BoothID: b.ID,
			Code:    b.Code,
			Level:   string(s.thresholds.LevelFor(count)),
			Count:   count,
		})
	}

	return &dto.CrowdStatusBroadcast{
		Booths:    statuses,
		Timestamp: s.now(),
	}, nil
}

func (s *crowdStatusServiceImpl) CurrentCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	counts, err := s.checkInRepo.CountByBoothSince(ctx, s.since())
	if err != nil {
		return nil, internalError("Failed to count check-ins", err)
	}
	return counts, nil
}

func (s *crowdStatusServiceImpl) CountForBooth(ctx context.Context, boothID uuid.UUID) (int64, error) {
	count, err := s.checkInRepo.CountForBoothSince(ctx, boothID, s.since())
	if err != nil {
		return 0, internalError("Failed to count check-ins", err)
	}
	return count, nil
}

func (s *crowdStatusServiceImpl) LevelFor(count int64) domain.CrowdLevel {
	return s.thresholds.LevelFor(count)
}

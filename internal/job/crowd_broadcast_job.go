package job

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/metrics"
	"fair-api/internal/realtime"
	"fair-api/internal/repository"
)

// StatusComputer is the part of the crowd-status service the broadcaster needs
type StatusComputer interface {
	ComputeCurrentStatus(ctx context.Context) (*dto.CrowdStatusBroadcast, error)
}

// CrowdBroadcastJob recomputes crowd levels and pushes them to subscribers
type CrowdBroadcastJob struct {
	crowd     StatusComputer
	snapshots repository.CrowdSnapshotRepository
	publisher realtime.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
	timeout   time.Duration
}

// NewCrowdBroadcastJob creates a new CrowdBroadcastJob instance
func NewCrowdBroadcastJob(
	crowd StatusComputer,
	snapshots repository.CrowdSnapshotRepository,
	publisher realtime.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
	timeout time.Duration,
) *CrowdBroadcastJob {
	return &CrowdBroadcastJob{
		crowd:     crowd,
		snapshots: snapshots,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		timeout:   timeout,
	}
}

// Run executes one tick. Failures are logged and the tick is skipped.
func (j *CrowdBroadcastJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	err := j.tick(ctx)
	j.metrics.RecordCrowdBroadcast(time.Since(start), err)

	if err != nil {
		j.logger.Error("Crowd status broadcast failed", zap.Error(err))
	}
}

func (j *CrowdBroadcastJob) tick(ctx context.Context) error {
	status, err := j.crowd.ComputeCurrentStatus(ctx)
	if err != nil {
		return err
	}

	for _, b := range status.Booths {
		j.metrics.SetBoothCheckIns(b.Code, b.Count)
	}

	// snapshots are an audit trail; losing one must not block delivery
	if err := j.saveSnapshots(ctx, status); err != nil {
		j.logger.Warn("Failed to persist crowd snapshots", zap.Error(err))
	}

	if err := j.publisher.Publish(ctx, realtime.CrowdStatusTopic, status); err != nil {
		if errors.Is(err, realtime.ErrHubClosed) {
			return nil
		}
		return err
	}

	j.logger.Debug("Crowd status broadcast", zap.Int("booths", len(status.Booths)))
	return nil
}

func (j *CrowdBroadcastJob) saveSnapshots(ctx context.Context, status *dto.CrowdStatusBroadcast) error {
	if len(status.Booths) == 0 {
		return nil
	}

	snapshots := make([]domain.CrowdSnapshot, 0, len(status.Booths))
	for _, b := range status.Booths {
		snapshots = append(snapshots, domain.CrowdSnapshot{
			BoothID:    b.BoothID,
			HeadCount:  b.Count,
			Level:      domain.CrowdLevel(b.Level),
			RecordedAt: status.Timestamp,
		})
	}
	return j.snapshots.CreateBatch(ctx, snapshots)
}

package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/metrics"
	"fair-api/internal/repository"
	"fair-api/internal/response"
)

// ResonanceService toggles reactions on learning records
type ResonanceService interface {
	Toggle(ctx context.Context, recordID uuid.UUID, resonanceType domain.ResonanceType, participant *domain.Participant) (*dto.ResonanceResponse, error)
}

type resonanceServiceImpl struct {
	resonanceRepo repository.ResonanceRepository
	recordRepo    repository.LearningRecordRepository
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewResonanceService creates a new instance of ResonanceService
func NewResonanceService(
	resonanceRepo repository.ResonanceRepository,
	recordRepo repository.LearningRecordRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ResonanceService {
	return &resonanceServiceImpl{
		resonanceRepo: resonanceRepo,
		recordRepo:    recordRepo,
		metrics:       m,
		logger:        logger,
	}
}

// Toggle removes the caller's resonance of that type if present, otherwise adds it
func (s *resonanceServiceImpl) Toggle(ctx context.Context, recordID uuid.UUID, resonanceType domain.ResonanceType, participant *domain.Participant) (*dto.ResonanceResponse, error) {
	if _, err := s.recordRepo.FindByID(ctx, recordID); err != nil {
		return nil, lookupError(err, "Learning record not found", "Failed to load learning record")
	}

	existing, err := s.resonanceRepo.Find(ctx, recordID, participant.ID, resonanceType)
	if err != nil {
		return nil, internalError("Failed to load resonance", err)
	}

	if existing != nil {
		if err := s.resonanceRepo.Delete(ctx, existing.ID); err != nil {
			return nil, internalError("Failed to remove resonance", err)
		}
		s.metrics.RecordResonanceToggle(string(resonanceType), false)
		removedID := existing.ID
		return &dto.ResonanceResponse{
			ID:       &removedID,
			RecordID: recordID,
			Type:     string(resonanceType),
			Toggled:  false,
		}, nil
	}

	resonance := &domain.Resonance{
		RecordID:      recordID,
		ParticipantID: participant.ID,
		Type:          resonanceType,
	}
	if err := s.resonanceRepo.Create(ctx, resonance); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Resonance was toggled concurrently, please retry", "")
		}
		return nil, internalError("Failed to add resonance", err)
	}

	s.metrics.RecordResonanceToggle(string(resonanceType), true)
	id := resonance.ID
	createdAt := resonance.CreatedAt
	return &dto.ResonanceResponse{
		ID:        &id,
		RecordID:  recordID,
		Type:      string(resonanceType),
		Toggled:   true,
		CreatedAt: &createdAt,
	}, nil
}

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

// LearningRecordService defines the interface for reflection records
type LearningRecordService interface {
	Create(ctx context.Context, req *dto.CreateLearningRecordRequest, author *domain.Participant) (*dto.LearningRecordResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLearningRecordRequest, caller *domain.Participant) (*dto.LearningRecordResponse, error)
	Delete(ctx context.Context, id uuid.UUID, caller *domain.Participant) error
	GetByID(ctx context.Context, id uuid.UUID, viewer *domain.Participant) (*dto.LearningRecordResponse, error)
	ListByBooth(ctx context.Context, boothID uuid.UUID, viewer *domain.Participant) ([]dto.LearningRecordResponse, error)
	ListMine(ctx context.Context, participant *domain.Participant) ([]dto.LearningRecordResponse, error)
}

type learningRecordServiceImpl struct {
	recordRepo    repository.LearningRecordRepository
	boothRepo     repository.BoothRepository
	keywordRepo   repository.KeywordRepository
	resonanceRepo repository.ResonanceRepository
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewLearningRecordService creates a new instance of LearningRecordService
func NewLearningRecordService(
	recordRepo repository.LearningRecordRepository,
	boothRepo repository.BoothRepository,
	keywordRepo repository.KeywordRepository,
	resonanceRepo repository.ResonanceRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) LearningRecordService {
	return &learningRecordServiceImpl{
		recordRepo:    recordRepo,
		boothRepo:     boothRepo,
		keywordRepo:   keywordRepo,
		resonanceRepo: resonanceRepo,
		metrics:       m,
		logger:        logger,
	}
}

func (s *learningRecordServiceImpl) Create(ctx context.Context, req *dto.CreateLearningRecordRequest, author *domain.Participant) (*dto.LearningRecordResponse, error) {
	booth, err := s.boothRepo.FindByID(ctx, req.BoothID)
	if err != nil {
		return nil, lookupError(err, "Booth not found", "Failed to load booth")
	}

	keywords, err := s.keywordRepo.FindByIDs(ctx, removeDuplicateUUIDs(req.KeywordIDs))
	if err != nil {
		return nil, internalError("Failed to resolve keywords", err)
	}

	record := &domain.LearningRecord{
		ParticipantID: author.ID,
		BoothID:       booth.ID,
		Content:       req.Content,
		Keywords:      keywords,
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, internalError("Failed to create learning record", err)
	}

	s.metrics.IncrementRecordCreated()

	record.Booth = *booth
	record.Participant = *author
	return s.toResponse(ctx, record, author)
}

// loadOwned fetches the record and verifies the caller wrote it
func (s *learningRecordServiceImpl) loadOwned(ctx context.Context, id uuid.UUID, caller *domain.Participant, forbiddenMsg string) (*domain.LearningRecord, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Learning record not found", "Failed to load learning record")
	}
	if !record.AuthoredBy(caller.ID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, forbiddenMsg, "")
	}
	return record, nil
}

func (s *learningRecordServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLearningRecordRequest, caller *domain.Participant) (*dto.LearningRecordResponse, error) {
	record, err := s.loadOwned(ctx, id, caller, "Only the author can update this learning record")
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		record.Content = *req.Content
	}
	var keywords *[]domain.GrowthKeyword
	if req.KeywordIDs != nil {
		resolved, err := s.keywordRepo.FindByIDs(ctx, removeDuplicateUUIDs(*req.KeywordIDs))
		if err != nil {
			return nil, internalError("Failed to resolve keywords", err)
		}
		keywords = &resolved
	}

	if err := s.recordRepo.Update(ctx, record, keywords); err != nil {
		return nil, internalError("Failed to update learning record", err)
	}
	if keywords != nil {
		record.Keywords = *keywords
	}

	return s.toResponse(ctx, record, caller)
}

func (s *learningRecordServiceImpl) Delete(ctx context.Context, id uuid.UUID, caller *domain.Participant) error {
	if _, err := s.loadOwned(ctx, id, caller, "Only the author can delete this learning record"); err != nil {
		return err
	}
	if err := s.recordRepo.Delete(ctx, id); err != nil {
		return internalError("Failed to delete learning record", err)
	}
	return nil
}

func (s *learningRecordServiceImpl) GetByID(ctx context.Context, id uuid.UUID, viewer *domain.Participant) (*dto.LearningRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Learning record not found", "Failed to load learning record")
	}
	return s.toResponse(ctx, record, viewer)
}

func (s *learningRecordServiceImpl) ListByBooth(ctx context.Context, boothID uuid.UUID, viewer *domain.Participant) ([]dto.LearningRecordResponse, error) {
	if _, err := s.boothRepo.FindByID(ctx, boothID); err != nil {
		return nil, lookupError(err, "Booth not found", "Failed to load booth")
	}
	records, err := s.recordRepo.FindByBooth(ctx, boothID)
	if err != nil {
		return nil, internalError("Failed to list learning records", err)
	}
	return s.toResponses(ctx, records, viewer)
}

func (s *learningRecordServiceImpl) ListMine(ctx context.Context, participant *domain.Participant) ([]dto.LearningRecordResponse, error) {
	records, err := s.recordRepo.FindByParticipant(ctx, participant.ID)
	if err != nil {
		return nil, internalError("Failed to list learning records", err)
	}
	return s.toResponses(ctx, records, participant)
}

func (s *learningRecordServiceImpl) toResponse(ctx context.Context, record *domain.LearningRecord, viewer *domain.Participant) (*dto.LearningRecordResponse, error) {
	out, err := s.toResponses(ctx, []*domain.LearningRecord{record}, viewer)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// toResponses recomputes resonance totals and the viewer's own resonances with two batched queries
func (s *learningRecordServiceImpl) toResponses(ctx context.Context, records []*domain.LearningRecord, viewer *domain.Participant) ([]dto.LearningRecordResponse, error) {
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	counts, err := s.resonanceRepo.CountsByRecords(ctx, ids)
	if err != nil {
		return nil, internalError("Failed to count resonances", err)
	}

	var viewerID uuid.UUID
	if viewer != nil {
		viewerID = viewer.ID
	}
	mine, err := s.resonanceRepo.TypesByParticipant(ctx, ids, viewerID)
	if err != nil {
		return nil, internalError("Failed to load resonances", err)
	}

	out := make([]dto.LearningRecordResponse, 0, len(records))
	for _, r := range records {
		myTypes := make([]string, 0, 2)
		for _, t := range mine[r.ID] {
			myTypes = append(myTypes, string(t))
		}

		out = append(out, dto.LearningRecordResponse{
			ID:                    r.ID,
			BoothID:               r.BoothID,
			BoothName:             r.Booth.Name,
			ParticipantID:         r.ParticipantID,
			ParticipantName:       r.Participant.DisplayName,
			Content:               r.Content,
			Keywords:              keywordResponses(r.Keywords),
			SupportCount:          counts[r.ID][domain.ResonanceSupport],
			SharedExperienceCount: counts[r.ID][domain.ResonanceSharedExperience],
			MyResonances:          myTypes,
			CreatedAt:             r.CreatedAt,
			UpdatedAt:             r.UpdatedAt,
		})
	}
	return out, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/repository"
	"fair-api/internal/response"
)

// BoothService defines the interface for booth business logic
type BoothService interface {
	ListActive(ctx context.Context) ([]dto.BoothListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BoothDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateBoothRequest, operator *domain.Participant) (*dto.BoothDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBoothRequest, caller *domain.Participant) (*dto.BoothDetailResponse, error)
}

type boothServiceImpl struct {
	boothRepo   repository.BoothRepository
	keywordRepo repository.KeywordRepository
	crowd       CrowdStatusService
	logger      *zap.Logger
}

// NewBoothService creates a new instance of BoothService
func NewBoothService(
	boothRepo repository.BoothRepository,
	keywordRepo repository.KeywordRepository,
	crowd CrowdStatusService,
	logger *zap.Logger,
) BoothService {
	return &boothServiceImpl{
		boothRepo:   boothRepo,
		keywordRepo: keywordRepo,
		crowd:       crowd,
		logger:      logger,
	}
}

func duplicateBoothCode(code string) *response.AppError {
	return response.NewAppError(response.ErrCodeAlreadyExists,
		fmt.Sprintf("Booth code '%s' already exists", code), "")
}

func (s *boothServiceImpl) toDetail(b *domain.Booth, count int64) *dto.BoothDetailResponse {
	return &dto.BoothDetailResponse{
		ID:              b.ID,
		Code:            b.Code,
		Name:            b.Name,
		IdeaSummary:     b.IdeaSummary,
		WrongAssumption: b.WrongAssumption,
		TrialMoments:    b.TrialMoments,
		LearningPivot:   b.LearningPivot,
		CurrentState:    b.CurrentState,
		LocationDesc:    b.LocationDesc,
		Keywords:        keywordResponses(b.Keywords),
		CrowdLevel:      string(s.crowd.LevelFor(count)),
		CrowdCount:      count,
	}
}

// ListActive returns active booths ordered by code with a fresh crowd level each
func (s *boothServiceImpl) ListActive(ctx context.Context) ([]dto.BoothListResponse, error) {
	booths, err := s.boothRepo.ListActive(ctx)
	if err != nil {
		return nil, internalError("Failed to list booths", err)
	}
	counts, err := s.crowd.CurrentCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BoothListResponse, 0, len(booths))
	for _, b := range booths {
		count := counts[b.ID]
		out = append(out, dto.BoothListResponse{
			ID:           b.ID,
			Code:         b.Code,
			Name:         b.Name,
			LocationDesc: b.LocationDesc,
			Keywords:     keywordResponses(b.Keywords),
			CrowdLevel:   string(s.crowd.LevelFor(count)),
			CrowdCount:   count,
		})
	}
	return out, nil
}

func (s *boothServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.BoothDetailResponse, error) {
	booth, err := s.boothRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Booth not found", "Failed to load booth")
	}
	count, err := s.crowd.CountForBooth(ctx, booth.ID)
	if err != nil {
		return nil, err
	}
	return s.toDetail(booth, count), nil
}

// Create registers a booth operated by the caller. The unique index on code
// settles concurrent creations; the loser gets the same duplicate error.
func (s *boothServiceImpl) Create(ctx context.Context, req *dto.CreateBoothRequest, operator *domain.Participant) (*dto.BoothDetailResponse, error) {
	exists, err := s.boothRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, internalError("Failed to check booth code", err)
	}
	if exists {
		return nil, duplicateBoothCode(req.Code)
	}

	keywords, err := s.keywordRepo.FindByIDs(ctx, removeDuplicateUUIDs(req.KeywordIDs))
	if err != nil {
		return nil, internalError("Failed to resolve keywords", err)
	}

	operatorID := operator.ID
	booth := &domain.Booth{
		Code:            req.Code,
		Name:            req.Name,
		QRToken:         uuid.NewString(),
		IdeaSummary:     req.IdeaSummary,
		WrongAssumption: req.WrongAssumption,
		TrialMoments:    req.TrialMoments,
		LearningPivot:   req.LearningPivot,
		CurrentState:    req.CurrentState,
		LocationDesc:    req.LocationDesc,
		OperatorID:      &operatorID,
		IsActive:        true,
		Keywords:        keywords,
	}

	if err := s.boothRepo.Create(ctx, booth); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, duplicateBoothCode(req.Code)
		}
		return nil, internalError("Failed to create booth", err)
	}

	s.logger.Info("Booth created",
		zap.String("booth_id", booth.ID.String()),
		zap.String("code", booth.Code),
		zap.String("operator_id", operatorID.String()),
	)
	return s.toDetail(booth, 0), nil
}

// Update applies non-nil fields. Only the recorded operator may update, whatever their role.
func (s *boothServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBoothRequest, caller *domain.Participant) (*dto.BoothDetailResponse, error) {
	booth, err := s.boothRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Booth not found", "Failed to load booth")
	}

	if !booth.OperatedBy(caller.ID) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the booth operator can update this booth", "")
	}

	applyString(&booth.Name, req.Name)
	applyOptional(&booth.IdeaSummary, req.IdeaSummary)
	applyOptional(&booth.WrongAssumption, req.WrongAssumption)
	applyOptional(&booth.TrialMoments, req.TrialMoments)
	applyOptional(&booth.LearningPivot, req.LearningPivot)
	applyOptional(&booth.CurrentState, req.CurrentState)
	applyOptional(&booth.LocationDesc, req.LocationDesc)

	var keywords *[]domain.GrowthKeyword
	if req.KeywordIDs != nil {
		resolved, err := s.keywordRepo.FindByIDs(ctx, removeDuplicateUUIDs(*req.KeywordIDs))
		if err != nil {
			return nil, internalError("Failed to resolve keywords", err)
		}
		keywords = &resolved
	}

	if err := s.boothRepo.Update(ctx, booth, keywords); err != nil {
		return nil, internalError("Failed to update booth", err)
	}
	if keywords != nil {
		booth.Keywords = *keywords
	}

	count, err := s.crowd.CountForBooth(ctx, booth.ID)
	if err != nil {
		return nil, err
	}
	return s.toDetail(booth, count), nil
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyOptional(dst **string, v *string) {
	if v != nil {
		value := *v
		*dst = &value
	}
}

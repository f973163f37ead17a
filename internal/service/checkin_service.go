package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/metrics"
	"fair-api/internal/repository"
	"fair-api/internal/response"
)

// CheckInService records one visit per participant and booth
type CheckInService interface {
	CheckInByQR(ctx context.Context, qrToken string, participant *domain.Participant) (*dto.CheckInResponse, error)
	CheckInByCode(ctx context.Context, code string, participant *domain.Participant) (*dto.CheckInResponse, error)
	GetMyCheckIns(ctx context.Context, participantID uuid.UUID) ([]dto.CheckInResponse, error)
}

type checkInServiceImpl struct {
	checkInRepo repository.CheckInRepository
	boothRepo   repository.BoothRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         Clock
}

// NewCheckInService creates a new instance of CheckInService
func NewCheckInService(
	checkInRepo repository.CheckInRepository,
	boothRepo repository.BoothRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CheckInService {
	return &checkInServiceImpl{
		checkInRepo: checkInRepo,
		boothRepo:   boothRepo,
		metrics:     m,
		logger:      logger,
		now:         utcNow,
	}
}

func alreadyCheckedIn(code string) *response.AppError {
	return response.NewAppError(response.ErrCodeAlreadyExists,
		fmt.Sprintf("Already checked in to booth '%s'", code), "")
}

func (s *checkInServiceImpl) CheckInByQR(ctx context.Context, qrToken string, participant *domain.Participant) (*dto.CheckInResponse, error) {
	booth, err := s.boothRepo.FindByQRToken(ctx, qrToken)
	if err != nil {
		return nil, internalError("Failed to look up booth", err)
	}
	if booth == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid QR token", "")
	}
	return s.checkIn(ctx, booth, participant, domain.CheckInMethodQR)
}

func (s *checkInServiceImpl) CheckInByCode(ctx context.Context, code string, participant *domain.Participant) (*dto.CheckInResponse, error) {
	booth, err := s.boothRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, internalError("Failed to look up booth", err)
	}
	if booth == nil {
		return nil, response.NewAppError(response.ErrCodeNotFound,
			fmt.Sprintf("Booth not found with code: %s", code), "")
	}
	return s.checkIn(ctx, booth, participant, domain.CheckInMethodManual)
}

// checkIn rejects inactive booths and repeat visits. The unique index on
// (participant_id, booth_id) catches a concurrent duplicate the pre-check missed.
func (s *checkInServiceImpl) checkIn(ctx context.Context, booth *domain.Booth, participant *domain.Participant, method domain.CheckInMethod) (*dto.CheckInResponse, error) {
	if !booth.IsActive {
		return nil, response.NewAppError(response.ErrCodeBadRequest,
			fmt.Sprintf("Booth '%s' is not active", booth.Code), "")
	}

	exists, err := s.checkInRepo.ExistsByParticipantAndBooth(ctx, participant.ID, booth.ID)
	if err != nil {
		return nil, internalError("Failed to check existing check-in", err)
	}
	if exists {
		return nil, alreadyCheckedIn(booth.Code)
	}

	checkIn := &domain.CheckIn{
		ParticipantID: participant.ID,
		BoothID:       booth.ID,
		Method:        method,
		CheckedInAt:   s.now(),
	}
	if err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, alreadyCheckedIn(booth.Code)
		}
		return nil, internalError("Failed to check in", err)
	}

	s.metrics.IncrementCheckInCreated(string(method))
	s.logger.Debug("Checked in",
		zap.String("booth_code", booth.Code),
		zap.String("participant_id", participant.ID.String()),
		zap.String("method", string(method)),
	)

	return &dto.CheckInResponse{
		ID:          checkIn.ID,
		BoothID:     booth.ID,
		BoothCode:   booth.Code,
		BoothName:   booth.Name,
		Method:      string(method),
		CheckedInAt: checkIn.CheckedInAt,
	}, nil
}

// GetMyCheckIns lists the participant's check-ins, newest first
func (s *checkInServiceImpl) GetMyCheckIns(ctx context.Context, participantID uuid.UUID) ([]dto.CheckInResponse, error) {
	checkIns, err := s.checkInRepo.FindByParticipant(ctx, participantID)
	if err != nil {
		return nil, internalError("Failed to list check-ins", err)
	}

	out := make([]dto.CheckInResponse, 0, len(checkIns))
	for _, ci := range checkIns {
		out = append(out, dto.CheckInResponse{
			ID:          ci.ID,
			BoothID:     ci.BoothID,
			BoothCode:   ci.Booth.Code,
			BoothName:   ci.Booth.Name,
			Method:      string(ci.Method),
			CheckedInAt: ci.CheckedInAt,
		})
	}
	return out, nil
}

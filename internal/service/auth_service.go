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

// AuthService issues and resolves opaque session tokens
type AuthService interface {
	AuthenticateQR(ctx context.Context, qrToken string) (*dto.AuthResponse, error)
	ResolveSession(ctx context.Context, token string) (*domain.Participant, error)
	DevParticipant(ctx context.Context) (*domain.Participant, error)
	CompleteOnboarding(ctx context.Context, participantID uuid.UUID) error
	Profile(p *domain.Participant) *dto.ParticipantResponse
}

type authServiceImpl struct {
	participantRepo repository.ParticipantRepository
	boothRepo       repository.BoothRepository
	entryTokens     map[string]struct{}
	metrics         *metrics.Metrics
	logger          *zap.Logger
	now             Clock
}

// NewAuthService creates a new instance of AuthService. entryTokens are the
// event entrance QR codes that register plain participants.
func NewAuthService(
	participantRepo repository.ParticipantRepository,
	boothRepo repository.BoothRepository,
	entryTokens []string,
	m *metrics.Metrics,
	logger *zap.Logger,
) AuthService {
	tokens := make(map[string]struct{}, len(entryTokens))
	for _, t := range entryTokens {
		tokens[t] = struct{}{}
	}
	return &authServiceImpl{
		participantRepo: participantRepo,
		boothRepo:       boothRepo,
		entryTokens:     tokens,
		metrics:         m,
		logger:          logger,
		now:             utcNow,
	}
}

// AuthenticateQR creates a new participant for every successful scan.
// A booth QR token yields a BOOTH_OPERATOR named after the booth, who claims
// the booth if it has no operator yet. An entry token yields a PARTICIPANT.
func (s *authServiceImpl) AuthenticateQR(ctx context.Context, qrToken string) (*dto.AuthResponse, error) {
	booth, err := s.boothRepo.FindByQRToken(ctx, qrToken)
	if err != nil {
		return nil, internalError("Failed to verify QR token", err)
	}

	participant := &domain.Participant{
		SessionToken: uuid.NewString(),
		LastActiveAt: s.now(),
	}

	switch {
	case booth != nil:
		name := booth.Name
		participant.Role = domain.RoleBoothOperator
		participant.DisplayName = &name
	case s.isEntryToken(qrToken):
		participant.Role = domain.RoleParticipant
	default:
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid QR token", "")
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, internalError("Failed to create session", err)
	}

	if booth != nil {
		claimed, err := s.boothRepo.ClaimOperator(ctx, booth.ID, participant.ID)
		if err != nil {
			return nil, internalError("Failed to assign booth operator", err)
		}
		if claimed {
			s.logger.Info("Booth operator assigned",
				zap.String("booth_code", booth.Code),
				zap.String("participant_id", participant.ID.String()),
			)
		}
	}

	s.metrics.RecordLogin(participant.Role.String())

	return &dto.AuthResponse{
		SessionToken:   participant.SessionToken,
		Role:           participant.Role.String(),
		OnboardingDone: participant.OnboardingDone,
		DisplayName:    participant.DisplayName,
	}, nil
}

func (s *authServiceImpl) isEntryToken(token string) bool {
	_, ok := s.entryTokens[token]
	return ok
}

// ResolveSession returns nil, nil for an unknown token and bumps last activity for a known one
func (s *authServiceImpl) ResolveSession(ctx context.Context, token string) (*domain.Participant, error) {
	participant, err := s.participantRepo.FindBySessionToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, nil
	}

	if err := s.participantRepo.TouchLastActive(ctx, participant.ID, s.now()); err != nil {
		s.logger.Warn("Failed to update last activity",
			zap.String("participant_id", participant.ID.String()),
			zap.Error(err),
		)
	}
	return participant, nil
}

// DevParticipant gets or creates the local development ADMIN identity
func (s *authServiceImpl) DevParticipant(ctx context.Context) (*domain.Participant, error) {
	existing, err := s.participantRepo.FindBySessionToken(ctx, domain.DevParticipantToken)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	name := "Dev Admin"
	dev := &domain.Participant{
		SessionToken:   domain.DevParticipantToken,
		Role:           domain.RoleAdmin,
		DisplayName:    &name,
		OnboardingDone: true,
		LastActiveAt:   s.now(),
	}
	if err := s.participantRepo.Create(ctx, dev); err != nil {
		if repository.IsDuplicateKey(err) {
			return s.participantRepo.FindBySessionToken(ctx, domain.DevParticipantToken)
		}
		return nil, err
	}
	s.logger.Warn("Created development fallback participant")
	return dev, nil
}

func (s *authServiceImpl) CompleteOnboarding(ctx context.Context, participantID uuid.UUID) error {
	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		return lookupError(err, "Participant not found", "Failed to load participant")
	}

	participant.OnboardingDone = true
	participant.LastActiveAt = s.now()
	if err := s.participantRepo.Update(ctx, participant); err != nil {
		return internalError("Failed to complete onboarding", err)
	}
	return nil
}

func (s *authServiceImpl) Profile(p *domain.Participant) *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:             p.ID,
		DisplayName:    p.DisplayName,
		Role:           p.Role.String(),
		OnboardingDone: p.OnboardingDone,
	}
}

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

// KeywordService defines the interface for growth keyword management
type KeywordService interface {
	ListActive(ctx context.Context) ([]dto.KeywordResponse, error)
	Create(ctx context.Context, req *dto.CreateKeywordRequest) (*dto.KeywordResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateKeywordRequest) (*dto.KeywordResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SeedDefaults(ctx context.Context) error
}

type keywordServiceImpl struct {
	keywordRepo repository.KeywordRepository
	logger      *zap.Logger
}

// NewKeywordService creates a new instance of KeywordService
func NewKeywordService(keywordRepo repository.KeywordRepository, logger *zap.Logger) KeywordService {
	return &keywordServiceImpl{
		keywordRepo: keywordRepo,
		logger:      logger,
	}
}

func toKeywordResponse(k *domain.GrowthKeyword) *dto.KeywordResponse {
	return &dto.KeywordResponse{ID: k.ID, Name: k.Name, NameEn: k.NameEn}
}

func duplicateKeyword(name string) *response.AppError {
	return response.NewAppError(response.ErrCodeAlreadyExists,
		fmt.Sprintf("Keyword with name '%s' already exists", name), "")
}

// ListActive returns active keywords ordered by sort order
func (s *keywordServiceImpl) ListActive(ctx context.Context) ([]dto.KeywordResponse, error) {
	keywords, err := s.keywordRepo.ListActive(ctx)
	if err != nil {
		return nil, internalError("Failed to list keywords", err)
	}

	out := make([]dto.KeywordResponse, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, *toKeywordResponse(k))
	}
	return out, nil
}

func (s *keywordServiceImpl) Create(ctx context.Context, req *dto.CreateKeywordRequest) (*dto.KeywordResponse, error) {
	existing, err := s.keywordRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, internalError("Failed to check keyword name", err)
	}
	if existing != nil {
		return nil, duplicateKeyword(req.Name)
	}

	keyword := &domain.GrowthKeyword{
		Name:      req.Name,
		NameEn:    req.NameEn,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := s.keywordRepo.Create(ctx, keyword); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, duplicateKeyword(req.Name)
		}
		return nil, internalError("Failed to create keyword", err)
	}

	s.logger.Info("Keyword created", zap.String("keyword_id", keyword.ID.String()), zap.String("name", keyword.Name))
	return toKeywordResponse(keyword), nil
}

// Update applies non-nil fields. Renaming to another keyword's name is rejected.
func (s *keywordServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateKeywordRequest) (*dto.KeywordResponse, error) {
	keyword, err := s.keywordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "Keyword not found", "Failed to load keyword")
	}

	if req.Name != nil && *req.Name != keyword.Name {
		other, err := s.keywordRepo.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, internalError("Failed to check keyword name", err)
		}
		if other != nil && other.ID != keyword.ID {
			return nil, duplicateKeyword(*req.Name)
		}
		keyword.Name = *req.Name
	}
	if req.NameEn != nil {
		keyword.NameEn = req.NameEn
	}
	if req.SortOrder != nil {
		keyword.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		keyword.IsActive = *req.IsActive
	}

	if err := s.keywordRepo.Update(ctx, keyword); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, duplicateKeyword(keyword.Name)
		}
		return nil, internalError("Failed to update keyword", err)
	}
	return toKeywordResponse(keyword), nil
}

// Delete deactivates the keyword. Existing booth and record links are kept.
func (s *keywordServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	keyword, err := s.keywordRepo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, "Keyword not found", "Failed to load keyword")
	}

	keyword.IsActive = false
	if err := s.keywordRepo.Update(ctx, keyword); err != nil {
		return internalError("Failed to deactivate keyword", err)
	}
	return nil
}

// SeedDefaults inserts the default keyword set when the table is empty
func (s *keywordServiceImpl) SeedDefaults(ctx context.Context) error {
	count, err := s.keywordRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count keywords: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := domain.DefaultKeywords()
	if err := s.keywordRepo.CreateBatch(ctx, defaults); err != nil {
		if repository.IsDuplicateKey(err) {
			// another replica seeded first
			return nil
		}
		return fmt.Errorf("seed keywords: %w", err)
	}
	s.logger.Info("Seeded default growth keywords", zap.Int("count", len(defaults)))
	return nil
}

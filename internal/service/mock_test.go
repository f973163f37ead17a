package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fair-api/internal/domain"
	"fair-api/internal/repository"
)

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateFunc             func(ctx context.Context, participant *domain.Participant) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	FindBySessionTokenFunc func(ctx context.Context, token string) (*domain.Participant, error)
	UpdateFunc             func(ctx context.Context, participant *domain.Participant) error
	TouchLastActiveFunc    func(ctx context.Context, id uuid.UUID, at time.Time) error
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, participant)
	}
	if participant.ID == uuid.Nil {
		participant.ID = uuid.New()
	}
	return nil
}

func (m *MockParticipantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParticipantRepository) FindBySessionToken(ctx context.Context, token string) (*domain.Participant, error) {
	if m.FindBySessionTokenFunc != nil {
		return m.FindBySessionTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockParticipantRepository) Update(ctx context.Context, participant *domain.Participant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, participant)
	}
	return nil
}

func (m *MockParticipantRepository) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.TouchLastActiveFunc != nil {
		return m.TouchLastActiveFunc(ctx, id, at)
	}
	return nil
}

func (m *MockParticipantRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoothRepository is a mock implementation of BoothRepository
type MockBoothRepository struct {
	CreateFunc        func(ctx context.Context, booth *domain.Booth) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Booth, error)
	FindByCodeFunc    func(ctx context.Context, code string) (*domain.Booth, error)
	FindByQRTokenFunc func(ctx context.Context, token string) (*domain.Booth, error)
	ExistsByCodeFunc  func(ctx context.Context, code string) (bool, error)
	ListActiveFunc    func(ctx context.Context) ([]*domain.Booth, error)
	UpdateFunc        func(ctx context.Context, booth *domain.Booth, keywords *[]domain.GrowthKeyword) error
	ClaimOperatorFunc func(ctx context.Context, boothID, operatorID uuid.UUID) (bool, error)
	CountActiveFunc   func(ctx context.Context) (int64, error)
}

func (m *MockBoothRepository) Create(ctx context.Context, booth *domain.Booth) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booth)
	}
	if booth.ID == uuid.Nil {
		booth.ID = uuid.New()
	}
	return nil
}

func (m *MockBoothRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booth, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoothRepository) FindByCode(ctx context.Context, code string) (*domain.Booth, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *MockBoothRepository) FindByQRToken(ctx context.Context, token string) (*domain.Booth, error) {
	if m.FindByQRTokenFunc != nil {
		return m.FindByQRTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockBoothRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, code)
	}
	return false, nil
}

func (m *MockBoothRepository) ListActive(ctx context.Context) ([]*domain.Booth, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoothRepository) Update(ctx context.Context, booth *domain.Booth, keywords *[]domain.GrowthKeyword) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, booth, keywords)
	}
	return nil
}

func (m *MockBoothRepository) ClaimOperator(ctx context.Context, boothID, operatorID uuid.UUID) (bool, error) {
	if m.ClaimOperatorFunc != nil {
		return m.ClaimOperatorFunc(ctx, boothID, operatorID)
	}
	return false, nil
}

func (m *MockBoothRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

// MockCheckInRepository is a mock implementation of CheckInRepository
type MockCheckInRepository struct {
	CreateFunc                      func(ctx context.Context, checkIn *domain.CheckIn) error
	ExistsByParticipantAndBoothFunc func(ctx context.Context, participantID, boothID uuid.UUID) (bool, error)
	FindByParticipantFunc           func(ctx context.Context, participantID uuid.UUID) ([]*domain.CheckIn, error)
	CountByBoothSinceFunc           func(ctx context.Context, since time.Time) (map[uuid.UUID]int64, error)
	CountForBoothSinceFunc          func(ctx context.Context, boothID uuid.UUID, since time.Time) (int64, error)
	CountFunc                       func(ctx context.Context) (int64, error)
}

func (m *MockCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, checkIn)
	}
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	return nil
}

func (m *MockCheckInRepository) ExistsByParticipantAndBooth(ctx context.Context, participantID, boothID uuid.UUID) (bool, error) {
	if m.ExistsByParticipantAndBoothFunc != nil {
		return m.ExistsByParticipantAndBoothFunc(ctx, participantID, boothID)
	}
	return false, nil
}

func (m *MockCheckInRepository) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.CheckIn, error) {
	if m.FindByParticipantFunc != nil {
		return m.FindByParticipantFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockCheckInRepository) CountByBoothSince(ctx context.Context, since time.Time) (map[uuid.UUID]int64, error) {
	if m.CountByBoothSinceFunc != nil {
		return m.CountByBoothSinceFunc(ctx, since)
	}
	return map[uuid.UUID]int64{}, nil
}

func (m *MockCheckInRepository) CountForBoothSince(ctx context.Context, boothID uuid.UUID, since time.Time) (int64, error) {
	if m.CountForBoothSinceFunc != nil {
		return m.CountForBoothSinceFunc(ctx, boothID, since)
	}
	return 0, nil
}

func (m *MockCheckInRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockKeywordRepository is a mock implementation of KeywordRepository
type MockKeywordRepository struct {
	CreateFunc      func(ctx context.Context, keyword *domain.GrowthKeyword) error
	CreateBatchFunc func(ctx context.Context, keywords []domain.GrowthKeyword) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.GrowthKeyword, error)
	FindByNameFunc  func(ctx context.Context, name string) (*domain.GrowthKeyword, error)
	FindByIDsFunc   func(ctx context.Context, ids []uuid.UUID) ([]domain.GrowthKeyword, error)
	ListActiveFunc  func(ctx context.Context) ([]*domain.GrowthKeyword, error)
	UpdateFunc      func(ctx context.Context, keyword *domain.GrowthKeyword) error
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockKeywordRepository) Create(ctx context.Context, keyword *domain.GrowthKeyword) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, keyword)
	}
	if keyword.ID == uuid.Nil {
		keyword.ID = uuid.New()
	}
	return nil
}

func (m *MockKeywordRepository) CreateBatch(ctx context.Context, keywords []domain.GrowthKeyword) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, keywords)
	}
	return nil
}

func (m *MockKeywordRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.GrowthKeyword, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockKeywordRepository) FindByName(ctx context.Context, name string) (*domain.GrowthKeyword, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockKeywordRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.GrowthKeyword, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return []domain.GrowthKeyword{}, nil
}

func (m *MockKeywordRepository) ListActive(ctx context.Context) ([]*domain.GrowthKeyword, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *MockKeywordRepository) Update(ctx context.Context, keyword *domain.GrowthKeyword) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, keyword)
	}
	return nil
}

func (m *MockKeywordRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockLearningRecordRepository is a mock implementation of LearningRecordRepository
type MockLearningRecordRepository struct {
	CreateFunc            func(ctx context.Context, record *domain.LearningRecord) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.LearningRecord, error)
	FindByBoothFunc       func(ctx context.Context, boothID uuid.UUID) ([]*domain.LearningRecord, error)
	FindByParticipantFunc func(ctx context.Context, participantID uuid.UUID) ([]*domain.LearningRecord, error)
	UpdateFunc            func(ctx context.Context, record *domain.LearningRecord, keywords *[]domain.GrowthKeyword) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountFunc             func(ctx context.Context) (int64, error)
}

func (m *MockLearningRecordRepository) Create(ctx context.Context, record *domain.LearningRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return nil
}

func (m *MockLearningRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.LearningRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLearningRecordRepository) FindByBooth(ctx context.Context, boothID uuid.UUID) ([]*domain.LearningRecord, error) {
	if m.FindByBoothFunc != nil {
		return m.FindByBoothFunc(ctx, boothID)
	}
	return nil, nil
}

func (m *MockLearningRecordRepository) FindByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.LearningRecord, error) {
	if m.FindByParticipantFunc != nil {
		return m.FindByParticipantFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockLearningRecordRepository) Update(ctx context.Context, record *domain.LearningRecord, keywords *[]domain.GrowthKeyword) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, record, keywords)
	}
	return nil
}

func (m *MockLearningRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockLearningRecordRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockResonanceRepository is a mock implementation of ResonanceRepository
type MockResonanceRepository struct {
	FindFunc               func(ctx context.Context, recordID, participantID uuid.UUID, resonanceType domain.ResonanceType) (*domain.Resonance, error)
	CreateFunc             func(ctx context.Context, resonance *domain.Resonance) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	CountsByRecordsFunc    func(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID]repository.ResonanceCounts, error)
	TypesByParticipantFunc func(ctx context.Context, recordIDs []uuid.UUID, participantID uuid.UUID) (map[uuid.UUID][]domain.ResonanceType, error)
}

func (m *MockResonanceRepository) Find(ctx context.Context, recordID, participantID uuid.UUID, resonanceType domain.ResonanceType) (*domain.Resonance, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, recordID, participantID, resonanceType)
	}
	return nil, nil
}

func (m *MockResonanceRepository) Create(ctx context.Context, resonance *domain.Resonance) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, resonance)
	}
	if resonance.ID == uuid.Nil {
		resonance.ID = uuid.New()
	}
	return nil
}

func (m *MockResonanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockResonanceRepository) CountsByRecords(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID]repository.ResonanceCounts, error) {
	if m.CountsByRecordsFunc != nil {
		return m.CountsByRecordsFunc(ctx, recordIDs)
	}
	return map[uuid.UUID]repository.ResonanceCounts{}, nil
}

func (m *MockResonanceRepository) TypesByParticipant(ctx context.Context, recordIDs []uuid.UUID, participantID uuid.UUID) (map[uuid.UUID][]domain.ResonanceType, error) {
	if m.TypesByParticipantFunc != nil {
		return m.TypesByParticipantFunc(ctx, recordIDs, participantID)
	}
	return map[uuid.UUID][]domain.ResonanceType{}, nil
}

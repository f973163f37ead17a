package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/middleware"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	AuthenticateQRFunc     func(ctx context.Context, qrToken string) (*dto.AuthResponse, error)
	CompleteOnboardingFunc func(ctx context.Context, participantID uuid.UUID) error
}

func (m *MockAuthService) AuthenticateQR(ctx context.Context, qrToken string) (*dto.AuthResponse, error) {
	if m.AuthenticateQRFunc != nil {
		return m.AuthenticateQRFunc(ctx, qrToken)
	}
	return nil, nil
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*domain.Participant, error) {
	return nil, nil
}

func (m *MockAuthService) DevParticipant(ctx context.Context) (*domain.Participant, error) {
	return nil, nil
}

func (m *MockAuthService) CompleteOnboarding(ctx context.Context, participantID uuid.UUID) error {
	if m.CompleteOnboardingFunc != nil {
		return m.CompleteOnboardingFunc(ctx, participantID)
	}
	return nil
}

func (m *MockAuthService) Profile(p *domain.Participant) *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:             p.ID,
		DisplayName:    p.DisplayName,
		Role:           p.Role.String(),
		OnboardingDone: p.OnboardingDone,
	}
}

// MockBoothService is a mock implementation of BoothService
type MockBoothService struct {
	ListActiveFunc func(ctx context.Context) ([]dto.BoothListResponse, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*dto.BoothDetailResponse, error)
	CreateFunc     func(ctx context.Context, req *dto.CreateBoothRequest, operator *domain.Participant) (*dto.BoothDetailResponse, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, req *dto.UpdateBoothRequest, caller *domain.Participant) (*dto.BoothDetailResponse, error)
}

func (m *MockBoothService) ListActive(ctx context.Context) ([]dto.BoothListResponse, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []dto.BoothListResponse{}, nil
}

func (m *MockBoothService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BoothDetailResponse, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoothService) Create(ctx context.Context, req *dto.CreateBoothRequest, operator *domain.Participant) (*dto.BoothDetailResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, operator)
	}
	return nil, nil
}

func (m *MockBoothService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBoothRequest, caller *domain.Participant) (*dto.BoothDetailResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req, caller)
	}
	return nil, nil
}

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	CheckInByQRFunc   func(ctx context.Context, qrToken string, participant *domain.Participant) (*dto.CheckInResponse, error)
	CheckInByCodeFunc func(ctx context.Context, code string, participant *domain.Participant) (*dto.CheckInResponse, error)
	GetMyCheckInsFunc func(ctx context.Context, participantID uuid.UUID) ([]dto.CheckInResponse, error)
}

func (m *MockCheckInService) CheckInByQR(ctx context.Context, qrToken string, participant *domain.Participant) (*dto.CheckInResponse, error) {
	if m.CheckInByQRFunc != nil {
		return m.CheckInByQRFunc(ctx, qrToken, participant)
	}
	return nil, nil
}

func (m *MockCheckInService) CheckInByCode(ctx context.Context, code string, participant *domain.Participant) (*dto.CheckInResponse, error) {
	if m.CheckInByCodeFunc != nil {
		return m.CheckInByCodeFunc(ctx, code, participant)
	}
	return nil, nil
}

func (m *MockCheckInService) GetMyCheckIns(ctx context.Context, participantID uuid.UUID) ([]dto.CheckInResponse, error) {
	if m.GetMyCheckInsFunc != nil {
		return m.GetMyCheckInsFunc(ctx, participantID)
	}
	return []dto.CheckInResponse{}, nil
}

// MockKeywordService is a mock implementation of KeywordService
type MockKeywordService struct {
	ListActiveFunc func(ctx context.Context) ([]dto.KeywordResponse, error)
	CreateFunc     func(ctx context.Context, req *dto.CreateKeywordRequest) (*dto.KeywordResponse, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, req *dto.UpdateKeywordRequest) (*dto.KeywordResponse, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockKeywordService) ListActive(ctx context.Context) ([]dto.KeywordResponse, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return []dto.KeywordResponse{}, nil
}

func (m *MockKeywordService) Create(ctx context.Context, req *dto.CreateKeywordRequest) (*dto.KeywordResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockKeywordService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateKeywordRequest) (*dto.KeywordResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockKeywordService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockKeywordService) SeedDefaults(ctx context.Context) error {
	return nil
}

// MockLearningRecordService is a mock implementation of LearningRecordService
type MockLearningRecordService struct {
	CreateFunc      func(ctx context.Context, req *dto.CreateLearningRecordRequest, author *domain.Participant) (*dto.LearningRecordResponse, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, req *dto.UpdateLearningRecordRequest, caller *domain.Participant) (*dto.LearningRecordResponse, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID, caller *domain.Participant) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID, viewer *domain.Participant) (*dto.LearningRecordResponse, error)
	ListByBoothFunc func(ctx context.Context, boothID uuid.UUID, viewer *domain.Participant) ([]dto.LearningRecordResponse, error)
	ListMineFunc    func(ctx context.Context, participant *domain.Participant) ([]dto.LearningRecordResponse, error)
}

func (m *MockLearningRecordService) Create(ctx context.Context, req *dto.CreateLearningRecordRequest, author *domain.Participant) (*dto.LearningRecordResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, author)
	}
	return nil, nil
}

func (m *MockLearningRecordService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLearningRecordRequest, caller *domain.Participant) (*dto.LearningRecordResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req, caller)
	}
	return nil, nil
}

func (m *MockLearningRecordService) Delete(ctx context.Context, id uuid.UUID, caller *domain.Participant) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, caller)
	}
	return nil
}

func (m *MockLearningRecordService) GetByID(ctx context.Context, id uuid.UUID, viewer *domain.Participant) (*dto.LearningRecordResponse, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, viewer)
	}
	return nil, nil
}

func (m *MockLearningRecordService) ListByBooth(ctx context.Context, boothID uuid.UUID, viewer *domain.Participant) ([]dto.LearningRecordResponse, error) {
	if m.ListByBoothFunc != nil {
		return m.ListByBoothFunc(ctx, boothID, viewer)
	}
	return []dto.LearningRecordResponse{}, nil
}

func (m *MockLearningRecordService) ListMine(ctx context.Context, participant *domain.Participant) ([]dto.LearningRecordResponse, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, participant)
	}
	return []dto.LearningRecordResponse{}, nil
}

// MockResonanceService is a mock implementation of ResonanceService
type MockResonanceService struct {
	ToggleFunc func(ctx context.Context, recordID uuid.UUID, resonanceType domain.ResonanceType, participant *domain.Participant) (*dto.ResonanceResponse, error)
}

func (m *MockResonanceService) Toggle(ctx context.Context, recordID uuid.UUID, resonanceType domain.ResonanceType, participant *domain.Participant) (*dto.ResonanceResponse, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, recordID, resonanceType, participant)
	}
	return nil, nil
}

// MockCrowdStatusService is a mock implementation of CrowdStatusService
type MockCrowdStatusService struct {
	ComputeCurrentStatusFunc func(ctx context.Context) (*dto.CrowdStatusBroadcast, error)
}

func (m *MockCrowdStatusService) ComputeCurrentStatus(ctx context.Context) (*dto.CrowdStatusBroadcast, error) {
	if m.ComputeCurrentStatusFunc != nil {
		return m.ComputeCurrentStatusFunc(ctx)
	}
	return &dto.CrowdStatusBroadcast{Booths: []dto.BoothCrowdStatus{}, Timestamp: time.Now().UTC()}, nil
}

func (m *MockCrowdStatusService) CurrentCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

func (m *MockCrowdStatusService) CountForBooth(ctx context.Context, boothID uuid.UUID) (int64, error) {
	return 0, nil
}

func (m *MockCrowdStatusService) LevelFor(count int64) domain.CrowdLevel {
	return domain.DefaultCrowdThresholds().LevelFor(count)
}

// testEngine returns a gin engine whose requests run as p. A nil p leaves the request anonymous.
func testEngine(p *domain.Participant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if p != nil {
			middleware.SetParticipant(c, p)
		}
		c.Next()
	})
	return r
}

func newTestParticipant(role domain.Role) *domain.Participant {
	name := "Tester"
	return &domain.Participant{
		BaseModel:    domain.BaseModel{ID: uuid.New()},
		SessionToken: uuid.NewString(),
		Role:         role,
		DisplayName:  &name,
	}
}

func performJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	return *env.Error
}

package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
	"github.com/SscSPs/alsabqon_app/internal/dto"
	"github.com/SscSPs/alsabqon_app/internal/handlers"
	"github.com/SscSPs/alsabqon_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PracticeService ---
type MockPracticeService struct {
	mock.Mock
}

func (m *MockPracticeService) CreateEntry(ctx context.Context, kind domain.PracticeKind, userID string, req dto.CreateEntryRequest) (*domain.PracticeEntry, error) {
	args := m.Called(ctx, kind, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeEntry), args.Error(1)
}

func (m *MockPracticeService) UpdateEntry(ctx context.Context, kind domain.PracticeKind, userID, entryID string, req dto.UpdateEntryRequest) (*domain.PracticeEntry, error) {
	args := m.Called(ctx, kind, userID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeEntry), args.Error(1)
}

func (m *MockPracticeService) GetHistory(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int, params dto.HistoryParams) (*domain.HistoryPage, error) {
	args := m.Called(ctx, kind, userID, categoryID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryPage), args.Error(1)
}

func (m *MockPracticeService) GetStats(ctx context.Context, kind domain.PracticeKind, userID string, categoryID int) (*domain.CategoryStats, error) {
	args := m.Called(ctx, kind, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryStats), args.Error(1)
}

func (m *MockPracticeService) GetDailySummary(ctx context.Context, kind domain.PracticeKind, userID, date string) (*domain.PracticeSummary, error) {
	args := m.Called(ctx, kind, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeSummary), args.Error(1)
}

func (m *MockPracticeService) GetRangeSummary(ctx context.Context, kind domain.PracticeKind, userID, startDate, endDate string) (*domain.PracticeSummary, error) {
	args := m.Called(ctx, kind, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PracticeSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PracticeSvcFacade = (*MockPracticeService)(nil)

// --- Mock ScriptureService ---
type MockScriptureService struct {
	mock.Mock
}

func (m *MockScriptureService) ListSurahs(ctx context.Context) []domain.SurahMeta {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SurahMeta)
}

func (m *MockScriptureService) Search(ctx context.Context, query string, include domain.IncludeField) []domain.SearchHit {
	args := m.Called(ctx, query, include)
	return args.Get(0).([]domain.SearchHit)
}

var _ portssvc.ScriptureSvc = (*MockScriptureService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCategories(ctx context.Context, kind domain.PracticeKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

var _ portssvc.CatalogSvc = (*MockCatalogService)(nil)

// --- Shared fixture ---

var testNow = time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC)

// handlerSuite wires the real routes to mocked services.
type handlerSuite struct {
	suite.Suite
	router        *gin.Engine
	mockPractice  *MockPracticeService
	mockScripture *MockScriptureService
	mockCatalog   *MockCatalogService
	jwtSecret     string
}

func (suite *handlerSuite) setupRouter(jwtSecret string) {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = jwtSecret
	suite.mockPractice = new(MockPracticeService)
	suite.mockScripture = new(MockScriptureService)
	suite.mockCatalog = new(MockCatalogService)

	cfg := &config.Config{
		IsProduction:  true,
		DefaultUserID: domain.DefaultUserID,
		JWTSecret:     jwtSecret,
	}
	services := &portssvc.ServiceContainer{
		Practice:  suite.mockPractice,
		Scripture: suite.mockScripture,
		Catalog:   suite.mockCatalog,
	}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services))
}

// generateTestToken creates a signed JWT for testing.
func (suite *handlerSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "alsabqon-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *handlerSuite) perform(method, url, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

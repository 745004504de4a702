package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	"github.com/sistemtoko/sistem_toko_app/internal/dto"
	"github.com/sistemtoko/sistem_toko_app/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// MockKasService is a mock type for the KasSvcFacade interface.
type MockKasService struct {
	mock.Mock
}

func (m *MockKasService) CreateKas(ctx context.Context, req dto.CreateKasRequest) (*dto.KasResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KasResponse), args.Error(1)
}

func (m *MockKasService) UpdateKas(ctx context.Context, kasID int64, req dto.UpdateKasRequest) (*dto.KasResponse, error) {
	args := m.Called(ctx, kasID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KasResponse), args.Error(1)
}

func (m *MockKasService) GetKasByID(ctx context.Context, kasID int64) (*dto.KasResponse, error) {
	args := m.Called(ctx, kasID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KasResponse), args.Error(1)
}

func (m *MockKasService) GetKasByName(ctx context.Context, name string) (*dto.KasResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KasResponse), args.Error(1)
}

func (m *MockKasService) ListKas(ctx context.Context, params dto.ListKasParams) ([]dto.KasResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.KasResponse), args.Error(1)
}

func (m *MockKasService) DeleteKas(ctx context.Context, kasID int64) (*dto.KasResponse, error) {
	args := m.Called(ctx, kasID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KasResponse), args.Error(1)
}

// --- Test Suite Setup ---

type KasHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockSvc *MockKasService
	token   string
}

func (suite *KasHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSvc = new(MockKasService)

	suite.router = gin.New()
	api := suite.router.Group("/api")
	api.Use(middleware.AuthMiddleware(testJWTSecret))
	registerKasRoutes(api, suite.mockSvc)

	suite.token = signedTestToken(suite.T(), testJWTSecret)
}

func signedTestToken(t *testing.T, secret string) string {
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func (suite *KasHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *KasHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) dto.WebResponse {
	var envelope dto.WebResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// --- Create ---

func (suite *KasHandlerTestSuite) TestCreateKas_Success() {
	expected := &dto.KasResponse{
		ID:                 7,
		Name:               "kas test",
		PrimaryAccountCode: "110101",
		Balance:            decimal.NewFromInt(3000000),
		IsActive:           true,
	}
	suite.mockSvc.On("CreateKas", mock.Anything, mock.MatchedBy(func(req dto.CreateKasRequest) bool {
		return req.Name == "kas test" && string(req.TypeKas) == "01"
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/kas", gin.H{
		"name":    "kas test",
		"typeKas": "01",
		"balance": "3000000",
	})

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.Empty(envelope.Errors)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal("110101", data["primaryAccountCode"])
	suite.Equal("kas test", data["name"])
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *KasHandlerTestSuite) TestCreateKas_MissingTypeKas() {
	w := suite.doRequest(http.MethodPost, "/api/kas", gin.H{"name": "kas test"})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.Contains(envelope.Errors, "TypeKas")
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateKas")
}

func (suite *KasHandlerTestSuite) TestCreateKas_InvalidTypeKas() {
	w := suite.doRequest(http.MethodPost, "/api/kas", gin.H{"name": "kas test", "typeKas": "03"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "CreateKas")
}

func (suite *KasHandlerTestSuite) TestCreateKas_DuplicateName() {
	suite.mockSvc.On("CreateKas", mock.Anything, mock.AnythingOfType("dto.CreateKasRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doRequest(http.MethodPost, "/api/kas", gin.H{"name": "kas test", "typeKas": "01"})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.NotEmpty(envelope.Errors)
}

// --- Read ---

func (suite *KasHandlerTestSuite) TestGetKas_Success() {
	expected := &dto.KasResponse{ID: 5, Name: "kas toko", PrimaryAccountCode: "110101", IsActive: true}
	suite.mockSvc.On("GetKasByID", mock.Anything, int64(5)).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/kas/5", nil)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal(float64(5), data["id"])
}

func (suite *KasHandlerTestSuite) TestGetKas_NotFound() {
	suite.mockSvc.On("GetKasByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/kas/404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *KasHandlerTestSuite) TestGetKas_NonNumericID() {
	w := suite.doRequest(http.MethodGet, "/api/kas/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "GetKasByID")
}

func (suite *KasHandlerTestSuite) TestListKas_PassesQueryParams() {
	name := "bca"
	isActive := false
	suite.mockSvc.On("ListKas", mock.Anything, dto.ListKasParams{Name: &name, IsActive: &isActive}).
		Return([]dto.KasResponse{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/kas?name=bca&isActive=false", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

// --- Update ---

func (suite *KasHandlerTestSuite) TestUpdateKas_BlockedWhenAccountUsed() {
	suite.mockSvc.On("UpdateKas", mock.Anything, int64(5), mock.AnythingOfType("dto.UpdateKasRequest")).
		Return(nil, apperrors.ErrAlreadyUsed).Once()

	w := suite.doRequest(http.MethodPut, "/api/kas/5", gin.H{"name": "kas baru"})

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.NotEmpty(envelope.Errors)
}

func (suite *KasHandlerTestSuite) TestUpdateKas_Success() {
	newName := "kas baru"
	expected := &dto.KasResponse{ID: 5, Name: newName, PrimaryAccountCode: "110101", IsActive: true}
	suite.mockSvc.On("UpdateKas", mock.Anything, int64(5), mock.MatchedBy(func(req dto.UpdateKasRequest) bool {
		return req.Name != nil && *req.Name == newName
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/kas/5", gin.H{"name": newName})

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal(newName, data["name"])
}

// --- Delete ---

func (suite *KasHandlerTestSuite) TestDeleteKas_ReturnsLastKnownView() {
	expected := &dto.KasResponse{ID: 8, Name: "kas bca", PrimaryAccountCode: "110202", IsActive: true}
	suite.mockSvc.On("DeleteKas", mock.Anything, int64(8)).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/kas/8", nil)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal("kas bca", data["name"])
}

// --- Auth ---

func (suite *KasHandlerTestSuite) TestMissingAuthorizationHeader() {
	req := httptest.NewRequest(http.MethodGet, "/api/kas", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListKas")
}

func (suite *KasHandlerTestSuite) TestWrongSigningKeyRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/kas", nil)
	req.Header.Set("Authorization", "Bearer "+signedTestToken(suite.T(), "other-secret"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListKas")
}

func TestKasHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(KasHandlerTestSuite))
}

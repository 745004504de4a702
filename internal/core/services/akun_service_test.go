package services_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
	"github.com/sistemtoko/sistem_toko_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccountsByCodePrefixInTx(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCodeInTx(ctx context.Context, tx pgx.Tx, code string) (*domain.Account, error) {
	args := m.Called(ctx, tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccountByCodeInTx(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AkunServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AkunSvcFacade
}

func (suite *AkunServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAkunService(suite.mockRepo)
}

// --- Code generation ---

func (suite *AkunServiceTestSuite) TestGenerateCashAccountCode_FirstOfType() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1101").Return(int64(0), nil).Once()

	code, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKasCash)

	suite.Require().NoError(err)
	suite.Equal("110101", code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AkunServiceTestSuite) TestGenerateCashAccountCode_ZeroPadding() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1101").Return(int64(5), nil).Once()

	code, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKasCash)

	suite.Require().NoError(err)
	suite.Equal("110106", code)
	suite.Len(code, 6)
}

func (suite *AkunServiceTestSuite) TestGenerateCashAccountCode_BankPrefix() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1102").Return(int64(41), nil).Once()

	code, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKasBank)

	suite.Require().NoError(err)
	suite.Equal("110242", code)
}

func (suite *AkunServiceTestSuite) TestGenerateCashAccountCode_SequenceExhausted() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1101").Return(int64(99), nil).Once()

	_, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKasCash)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AkunServiceTestSuite) TestGenerateCashAccountCode_InvalidType() {
	ctx := context.Background()

	_, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKas("99"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountAccountsByCodePrefixInTx")
}

func (suite *AkunServiceTestSuite) TestGenerateCashAccountCode_SequentialCallsAreGapFree() {
	ctx := context.Background()

	// Scenario: two bank registers created back to back.
	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1102").Return(int64(0), nil).Once()
	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1102").Return(int64(1), nil).Once()

	first, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKasBank)
	suite.Require().NoError(err)
	second, err := suite.service.GenerateCashAccountCode(ctx, nil, domain.TypeKasBank)
	suite.Require().NoError(err)

	suite.Equal("110201", first)
	suite.Equal("110202", second)
}

// --- Cash account creation ---

func (suite *AkunServiceTestSuite) TestCreateCashAccount_Success() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1101").Return(int64(2), nil).Once()
	suite.mockRepo.On("SaveAccountInTx", ctx, mock.Anything, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Code == "110103" &&
			acc.Name == "kas utama" &&
			acc.Level == domain.CashAccountLevel &&
			acc.AccountType == domain.CashAccount &&
			acc.CashFlowStatus == domain.OperationalCashFlow
	})).Return(nil).Once()

	account, err := suite.service.CreateCashAccount(ctx, nil, "kas utama", domain.TypeKasCash)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("110103", account.Code)
	suite.Equal(domain.CashAccount, account.AccountType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AkunServiceTestSuite) TestCreateCashAccount_PropagatesDuplicate() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccountsByCodePrefixInTx", ctx, mock.Anything, "1101").Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveAccountInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateCashAccount(ctx, nil, "kas balapan", domain.TypeKasCash)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- Lookups ---

func (suite *AkunServiceTestSuite) TestGetAccountByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByCode", ctx, "999999").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByCode(ctx, "999999")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AkunServiceTestSuite) TestGetAccountByCode_Idempotent() {
	ctx := context.Background()
	expected := &domain.Account{Code: "110101", Name: "kas toko", Level: 2, AccountType: domain.CashAccount, CashFlowStatus: domain.OperationalCashFlow}

	suite.mockRepo.On("FindAccountByCode", ctx, "110101").Return(expected, nil).Twice()

	first, err := suite.service.GetAccountByCode(ctx, "110101")
	suite.Require().NoError(err)
	second, err := suite.service.GetAccountByCode(ctx, "110101")
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func TestAkunServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AkunServiceTestSuite))
}

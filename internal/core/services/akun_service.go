package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	portsrepo "github.com/sistemtoko/sistem_toko_app/internal/core/ports/repositories"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
)

// cashAccountMaxSequence caps the two digit sequence segment of generated
// codes. The 100th cash account of a type cannot be represented in six
// characters and is rejected outright.
const cashAccountMaxSequence = 99

// akunService implements the account directory over the chart of accounts.
type akunService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAkunService creates the account directory service.
func NewAkunService(accountRepo portsrepo.AccountRepository) portssvc.AkunSvcFacade {
	return &akunService{accountRepo: accountRepo}
}

var _ portssvc.AkunSvcFacade = (*akunService)(nil)

func (s *akunService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *akunService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by name", slog.String("name", name))
		}
		return nil, err
	}
	return account, nil
}

// GenerateCashAccountCode derives the next unused code for the given register
// type within the caller's transaction. The count-then-format derivation is
// gap-free for sequential callers; concurrent transactions can still collide
// on the unique code constraint, which the kas service handles by retrying.
func (s *akunService) GenerateCashAccountCode(ctx context.Context, tx pgx.Tx, typeKas domain.TypeKas) (string, error) {
	if !typeKas.Valid() {
		return "", fmt.Errorf("%w: unknown kas type %q", apperrors.ErrValidation, string(typeKas))
	}

	prefix := typeKas.CodePrefix()
	count, err := s.accountRepo.CountAccountsByCodePrefixInTx(ctx, tx, prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts for code generation", slog.String("prefix", prefix))
		return "", err
	}

	sequence := count + 1
	if sequence > cashAccountMaxSequence {
		return "", fmt.Errorf("%w: cash account sequence exhausted for prefix %s", apperrors.ErrValidation, prefix)
	}

	return fmt.Sprintf("%s%02d", prefix, sequence), nil
}

// CreateCashAccount mints a code and inserts a level-2 cash account with
// operational cash-flow status within the caller's transaction.
func (s *akunService) CreateCashAccount(ctx context.Context, tx pgx.Tx, name string, typeKas domain.TypeKas) (*domain.Account, error) {
	code, err := s.GenerateCashAccountCode(ctx, tx, typeKas)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		Code:           code,
		Name:           name,
		Level:          domain.CashAccountLevel,
		AccountType:    domain.CashAccount,
		CashFlowStatus: domain.OperationalCashFlow,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccountInTx(ctx, tx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save cash account", slog.String("code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cash account created", slog.String("code", code), slog.String("name", name))
	return &account, nil
}

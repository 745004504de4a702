package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	portsrepo "github.com/sistemtoko/sistem_toko_app/internal/core/ports/repositories"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
	"github.com/sistemtoko/sistem_toko_app/internal/dto"
)

// maxCodeGenRetries bounds how often CreateKas replays its transaction after
// losing a generated-code race to a concurrent creation.
const maxCodeGenRetries = 3

// kasService implements the cash/bank register lifecycle. Every multi-row
// write runs inside one transaction owned here; the account directory and the
// usage guard receive the same pgx.Tx.
type kasService struct {
	BaseService
	kasRepo     portsrepo.KasRepositoryWithTx
	accountRepo portsrepo.AccountRepository
	akunSvc     portssvc.AkunSvcFacade
	usageGuard  portssvc.AccountUsageGuard
}

// NewKasService creates the cash/bank register service.
func NewKasService(
	kasRepo portsrepo.KasRepositoryWithTx,
	accountRepo portsrepo.AccountRepository,
	akunSvc portssvc.AkunSvcFacade,
	usageGuard portssvc.AccountUsageGuard,
) portssvc.KasSvcFacade {
	return &kasService{
		kasRepo:     kasRepo,
		accountRepo: accountRepo,
		akunSvc:     akunSvc,
		usageGuard:  usageGuard,
	}
}

var _ portssvc.KasSvcFacade = (*kasService)(nil)

// CreateKas mints a primary cash account and inserts the register in one
// transaction. When two creations race on the same generated code, the loser
// fails the unique constraint on akun.code and the whole transaction is
// replayed, up to maxCodeGenRetries times.
func (s *kasService) CreateKas(ctx context.Context, req dto.CreateKasRequest) (*dto.KasResponse, error) {
	exists, err := s.kasRepo.ExistsKasWithName(ctx, req.Name)
	if err != nil {
		s.LogError(ctx, err, "Failed to check kas name before create", slog.String("name", req.Name))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: kas with name %q", apperrors.ErrDuplicate, req.Name)
	}

	var lastErr error
	for attempt := 1; attempt <= maxCodeGenRetries; attempt++ {
		resp, err := s.createKasTx(ctx, req)
		if err == nil {
			s.LogInfo(ctx, "Kas created",
				slog.Int64("kas_id", resp.ID),
				slog.String("primary_account_code", resp.PrimaryAccountCode))
			return resp, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogWarn(ctx, "Generated account code collided, retrying",
			slog.String("name", req.Name), slog.Int("attempt", attempt))
		lastErr = err
	}
	return nil, lastErr
}

// createKasTx performs one attempt of the creation transaction.
func (s *kasService) createKasTx(ctx context.Context, req dto.CreateKasRequest) (*dto.KasResponse, error) {
	tx, err := s.kasRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.kasRepo.Rollback(ctx, tx) }()

	account, err := s.akunSvc.CreateCashAccount(ctx, tx, req.Name, req.TypeKas)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	kas := domain.Kas{
		Name:               req.Name,
		PrimaryAccountCode: account.Code,
		BankAccountNumber:  req.BankAccountNumber,
		Owner:              req.Owner,
		Balance:            req.Balance,
		Notes:              req.Notes,
		IsActive:           isActive,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	kasID, err := s.kasRepo.SaveKasInTx(ctx, tx, kas)
	if err != nil {
		return nil, err
	}
	kas.KasID = kasID

	var secondary *domain.Account
	if req.SecondaryAccountCode != nil && *req.SecondaryAccountCode != "" {
		code := *req.SecondaryAccountCode
		// The credit-card account must pre-exist; a missing code fails the
		// foreign key and surfaces as ErrConflict.
		if err := s.kasRepo.LinkSecondaryAccountInTx(ctx, tx, kasID, code); err != nil {
			return nil, err
		}
		secondary, err = s.accountRepo.FindAccountByCodeInTx(ctx, tx, code)
		if err != nil {
			return nil, err
		}
		kas.SecondaryAccountCode = code
	}

	if err := s.kasRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	resp := dto.ToKasResponse(&kas, account, secondary)
	return &resp, nil
}

// UpdateKas rewrites the mutable fields of a register. The primary account
// row is never touched here, even when the register is renamed.
func (s *kasService) UpdateKas(ctx context.Context, kasID int64, req dto.UpdateKasRequest) (*dto.KasResponse, error) {
	tx, err := s.kasRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.kasRepo.Rollback(ctx, tx) }()

	kas, err := s.kasRepo.FindKasByIDInTx(ctx, tx, kasID)
	if err != nil {
		return nil, err
	}

	used, err := s.usageGuard.HasBeenUsed(ctx, tx, kas.PrimaryAccountCode)
	if err != nil {
		s.LogError(ctx, err, "Usage guard check failed", slog.Int64("kas_id", kasID))
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: account %s has recorded activity", apperrors.ErrAlreadyUsed, kas.PrimaryAccountCode)
	}

	if req.Name != nil {
		kas.Name = *req.Name
	}
	if req.SecondaryAccountCode != nil {
		kas.SecondaryAccountCode = *req.SecondaryAccountCode
	}
	if req.BankAccountNumber != nil {
		kas.BankAccountNumber = *req.BankAccountNumber
	}
	if req.Owner != nil {
		kas.Owner = *req.Owner
	}
	if req.Balance != nil {
		kas.Balance = *req.Balance
	}
	if req.Notes != nil {
		kas.Notes = *req.Notes
	}
	if req.IsActive != nil {
		kas.IsActive = *req.IsActive
	}
	kas.UpdatedAt = time.Now()

	if err := s.kasRepo.UpdateKasInTx(ctx, tx, *kas); err != nil {
		return nil, err
	}

	primary, secondary, err := s.resolveAccountsInTx(ctx, tx, kas)
	if err != nil {
		return nil, err
	}

	if err := s.kasRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Kas updated", slog.Int64("kas_id", kasID))
	resp := dto.ToKasResponse(kas, primary, secondary)
	return &resp, nil
}

// GetKasByID returns the register enriched with its resolved accounts.
func (s *kasService) GetKasByID(ctx context.Context, kasID int64) (*dto.KasResponse, error) {
	kas, err := s.kasRepo.FindKasByID(ctx, kasID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find kas by id", slog.Int64("kas_id", kasID))
		}
		return nil, err
	}
	return s.enrich(ctx, kas)
}

// GetKasByName returns the first register whose name contains name.
func (s *kasService) GetKasByName(ctx context.Context, name string) (*dto.KasResponse, error) {
	kas, err := s.kasRepo.FindKasByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find kas by name", slog.String("name", name))
		}
		return nil, err
	}
	return s.enrich(ctx, kas)
}

// ListKas returns registers filtered by an optional name fragment. When the
// caller does not supply an active flag, only active registers are listed.
func (s *kasService) ListKas(ctx context.Context, params dto.ListKasParams) ([]dto.KasResponse, error) {
	isActive := true
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	registers, err := s.kasRepo.ListKas(ctx, params.Name, isActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list kas")
		return nil, err
	}

	codes := make([]string, 0, len(registers)*2)
	for _, kas := range registers {
		codes = append(codes, kas.PrimaryAccountCode)
		if kas.SecondaryAccountCode != "" {
			codes = append(codes, kas.SecondaryAccountCode)
		}
	}
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accounts for kas list")
		return nil, err
	}

	result := make([]dto.KasResponse, 0, len(registers))
	for i := range registers {
		kas := registers[i]
		var primary, secondary *domain.Account
		if acc, ok := accounts[kas.PrimaryAccountCode]; ok {
			primary = &acc
		}
		if acc, ok := accounts[kas.SecondaryAccountCode]; ok {
			secondary = &acc
		}
		result = append(result, dto.ToKasResponse(&kas, primary, secondary))
	}
	return result, nil
}

// DeleteKas removes the register, its primary account and, when linked, its
// secondary account in one transaction. Any failure rolls back every step so
// a partial deletion is never observable.
func (s *kasService) DeleteKas(ctx context.Context, kasID int64) (*dto.KasResponse, error) {
	tx, err := s.kasRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.kasRepo.Rollback(ctx, tx) }()

	kas, err := s.kasRepo.FindKasByIDInTx(ctx, tx, kasID)
	if err != nil {
		return nil, err
	}

	used, err := s.usageGuard.HasBeenUsed(ctx, tx, kas.PrimaryAccountCode)
	if err != nil {
		s.LogError(ctx, err, "Usage guard check failed", slog.Int64("kas_id", kasID))
		return nil, err
	}
	if used {
		return nil, fmt.Errorf("%w: account %s has recorded activity", apperrors.ErrAlreadyUsed, kas.PrimaryAccountCode)
	}

	// Capture the last-known view before the rows disappear.
	primary, secondary, err := s.resolveAccountsInTx(ctx, tx, kas)
	if err != nil {
		return nil, err
	}

	if err := s.kasRepo.DeleteKasInTx(ctx, tx, kasID); err != nil {
		return nil, err
	}
	if err := s.accountRepo.DeleteAccountByCodeInTx(ctx, tx, kas.PrimaryAccountCode); err != nil {
		return nil, err
	}
	if kas.SecondaryAccountCode != "" {
		if err := s.accountRepo.DeleteAccountByCodeInTx(ctx, tx, kas.SecondaryAccountCode); err != nil {
			return nil, err
		}
	}

	if err := s.kasRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Kas deleted",
		slog.Int64("kas_id", kasID),
		slog.String("primary_account_code", kas.PrimaryAccountCode))
	resp := dto.ToKasResponse(kas, primary, secondary)
	return &resp, nil
}

// resolveAccountsInTx fetches the register's ledger accounts within tx.
func (s *kasService) resolveAccountsInTx(ctx context.Context, tx pgx.Tx, kas *domain.Kas) (*domain.Account, *domain.Account, error) {
	primary, err := s.accountRepo.FindAccountByCodeInTx(ctx, tx, kas.PrimaryAccountCode)
	if err != nil {
		return nil, nil, err
	}
	var secondary *domain.Account
	if kas.SecondaryAccountCode != "" {
		secondary, err = s.accountRepo.FindAccountByCodeInTx(ctx, tx, kas.SecondaryAccountCode)
		if err != nil {
			return nil, nil, err
		}
	}
	return primary, secondary, nil
}

// enrich resolves the register's accounts outside any transaction.
func (s *kasService) enrich(ctx context.Context, kas *domain.Kas) (*dto.KasResponse, error) {
	codes := []string{kas.PrimaryAccountCode}
	if kas.SecondaryAccountCode != "" {
		codes = append(codes, kas.SecondaryAccountCode)
	}
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve accounts for kas", slog.Int64("kas_id", kas.KasID))
		return nil, err
	}

	var primary, secondary *domain.Account
	if acc, ok := accounts[kas.PrimaryAccountCode]; ok {
		primary = &acc
	}
	if acc, ok := accounts[kas.SecondaryAccountCode]; ok {
		secondary = &acc
	}
	resp := dto.ToKasResponse(kas, primary, secondary)
	return &resp, nil
}

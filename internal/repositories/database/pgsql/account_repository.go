package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	portsrepo "github.com/sistemtoko/sistem_toko_app/internal/core/ports/repositories"
	"github.com/sistemtoko/sistem_toko_app/internal/models"
	"github.com/sistemtoko/sistem_toko_app/internal/utils/mapping"
)

const accountColumns = "code, name, level, account_type, cash_flow_status, created_at, updated_at"

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.Code,
		&m.Name,
		&m.Level,
		&m.AccountType,
		&m.CashFlowStatus,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

// FindAccountByCode retrieves an account by its six character code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM akun WHERE code = $1;`

	acc, err := scanAccount(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}
	return &acc, nil
}

// FindAccountByName retrieves the first account matching name.
// Account names are not unique; ordering by code keeps the result stable.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM akun WHERE name = $1 ORDER BY code LIMIT 1;`

	acc, err := scanAccount(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by name %q: %w", name, err)
	}
	return &acc, nil
}

// FindAccountsByCodes retrieves multiple accounts keyed by code. Codes with
// no matching row are simply absent from the result map.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM akun WHERE code = ANY($1);`

	rows, err := r.pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by codes: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during batch fetch: %w", err)
		}
		accounts[acc.Code] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows during batch fetch: %w", err)
	}
	return accounts, nil
}

// CountAccountsByCodePrefixInTx counts accounts whose code starts with
// prefix, reading within the caller's transaction so concurrent creations in
// other transactions stay invisible.
func (r *PgxAccountRepository) CountAccountsByCodePrefixInTx(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	query := `SELECT COUNT(*) FROM akun WHERE code LIKE $1 || '%';`

	var count int64
	if err := tx.QueryRow(ctx, query, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts with code prefix %s: %w", prefix, err)
	}
	return count, nil
}

// FindAccountByCodeInTx retrieves an account by code within the caller's
// transaction.
func (r *PgxAccountRepository) FindAccountByCodeInTx(ctx context.Context, tx pgx.Tx, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM akun WHERE code = $1;`

	acc, err := scanAccount(tx.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s in tx: %w", code, err)
	}
	return &acc, nil
}

// SaveAccountInTx inserts a new account row within the caller's transaction.
// A colliding code surfaces as apperrors.ErrDuplicate so the caller can retry
// code generation.
func (r *PgxAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO akun (code, name, level, account_type, cash_flow_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.Code,
		m.Name,
		m.Level,
		m.AccountType,
		m.CashFlowStatus,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if derr := translateConstraintError(err); derr != nil {
			return fmt.Errorf("%w: account code %s", derr, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.Code, err)
	}
	return nil
}

// DeleteAccountByCodeInTx removes an account row within the caller's
// transaction.
func (r *PgxAccountRepository) DeleteAccountByCodeInTx(ctx context.Context, tx pgx.Tx, code string) error {
	query := `DELETE FROM akun WHERE code = $1;`

	cmdTag, err := tx.Exec(ctx, query, code)
	if err != nil {
		if derr := translateConstraintError(err); derr != nil {
			return fmt.Errorf("%w: account %s is still referenced", derr, code)
		}
		return fmt.Errorf("failed to delete account %s: %w", code, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
	}
	return nil
}

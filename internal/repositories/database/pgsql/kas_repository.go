package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	portsrepo "github.com/sistemtoko/sistem_toko_app/internal/core/ports/repositories"
	"github.com/sistemtoko/sistem_toko_app/internal/models"
	"github.com/sistemtoko/sistem_toko_app/internal/utils/mapping"
)

const kasColumns = "kas_id, name, primary_account_code, secondary_account_code, bank_account_number, owner, balance, notes, is_active, created_at, updated_at"

type PgxKasRepository struct {
	BaseRepository
}

// newPgxKasRepository creates a new repository for cash/bank register data.
func newPgxKasRepository(pool *pgxpool.Pool) portsrepo.KasRepositoryWithTx {
	return &PgxKasRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.KasRepositoryWithTx = (*PgxKasRepository)(nil)

// nullIfEmpty maps an empty string to SQL NULL.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func scanKas(row rowScanner) (domain.Kas, error) {
	var m models.Kas
	var secondary, bankNumber, owner, notes sql.NullString
	err := row.Scan(
		&m.KasID,
		&m.Name,
		&m.PrimaryAccountCode,
		&secondary,
		&bankNumber,
		&owner,
		&m.Balance,
		&notes,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return domain.Kas{}, err
	}
	m.SecondaryAccountCode = secondary.String
	m.BankAccountNumber = bankNumber.String
	m.Owner = owner.String
	m.Notes = notes.String
	return mapping.ToDomainKas(m), nil
}

// FindKasByID retrieves a register by its surrogate id.
func (r *PgxKasRepository) FindKasByID(ctx context.Context, kasID int64) (*domain.Kas, error) {
	query := `SELECT ` + kasColumns + ` FROM kas WHERE kas_id = $1;`

	kas, err := scanKas(r.Pool.QueryRow(ctx, query, kasID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kas by id %d: %w", kasID, err)
	}
	return &kas, nil
}

// FindKasByName retrieves the first register whose name contains name,
// case-insensitively.
func (r *PgxKasRepository) FindKasByName(ctx context.Context, name string) (*domain.Kas, error) {
	query := `SELECT ` + kasColumns + ` FROM kas WHERE name ILIKE '%' || $1 || '%' ORDER BY kas_id LIMIT 1;`

	kas, err := scanKas(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kas by name %q: %w", name, err)
	}
	return &kas, nil
}

// ExistsKasWithName reports whether a register with exactly this name exists,
// active or not.
func (r *PgxKasRepository) ExistsKasWithName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM kas WHERE name = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check kas name %q: %w", name, err)
	}
	return exists, nil
}

// ListKas returns all registers with the given active flag, optionally
// filtered by a case-insensitive name fragment. No pagination: kas listings
// are small by construction (at most 99 registers per type).
func (r *PgxKasRepository) ListKas(ctx context.Context, name *string, isActive bool) ([]domain.Kas, error) {
	query := `SELECT ` + kasColumns + ` FROM kas WHERE is_active = $1`
	args := []any{isActive}
	if name != nil {
		query += ` AND name ILIKE '%' || $2 || '%'`
		args = append(args, *name)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query kas list: %w", err)
	}
	defer rows.Close()

	result := []domain.Kas{}
	for rows.Next() {
		kas, err := scanKas(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kas row: %w", err)
		}
		result = append(result, kas)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kas rows: %w", err)
	}
	return result, nil
}

// FindKasByIDInTx retrieves a register by id within the caller's transaction
// and locks the row so the usage-guard check and the following mutation see a
// stable record.
func (r *PgxKasRepository) FindKasByIDInTx(ctx context.Context, tx pgx.Tx, kasID int64) (*domain.Kas, error) {
	query := `SELECT ` + kasColumns + ` FROM kas WHERE kas_id = $1 FOR UPDATE;`

	kas, err := scanKas(tx.QueryRow(ctx, query, kasID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kas by id %d in tx: %w", kasID, err)
	}
	return &kas, nil
}

// SaveKasInTx inserts a new register row within the caller's transaction and
// returns the generated id.
func (r *PgxKasRepository) SaveKasInTx(ctx context.Context, tx pgx.Tx, kas domain.Kas) (int64, error) {
	m := mapping.ToModelKas(kas)

	query := `
		INSERT INTO kas (name, primary_account_code, secondary_account_code, bank_account_number, owner, balance, notes, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING kas_id;
	`
	var kasID int64
	err := tx.QueryRow(ctx, query,
		m.Name,
		m.PrimaryAccountCode,
		nullIfEmpty(m.SecondaryAccountCode),
		nullIfEmpty(m.BankAccountNumber),
		nullIfEmpty(m.Owner),
		m.Balance,
		nullIfEmpty(m.Notes),
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&kasID)
	if err != nil {
		if derr := translateConstraintError(err); derr != nil {
			return 0, fmt.Errorf("%w: kas %q", derr, m.Name)
		}
		return 0, fmt.Errorf("failed to save kas %q: %w", m.Name, err)
	}
	return kasID, nil
}

// UpdateKasInTx rewrites the mutable fields of a register within the caller's
// transaction. The primary account code is immutable and not part of the
// update set.
func (r *PgxKasRepository) UpdateKasInTx(ctx context.Context, tx pgx.Tx, kas domain.Kas) error {
	m := mapping.ToModelKas(kas)

	query := `
		UPDATE kas
		SET name = $2, secondary_account_code = $3, bank_account_number = $4, owner = $5, balance = $6, notes = $7, is_active = $8, updated_at = $9
		WHERE kas_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.KasID,
		m.Name,
		nullIfEmpty(m.SecondaryAccountCode),
		nullIfEmpty(m.BankAccountNumber),
		nullIfEmpty(m.Owner),
		m.Balance,
		nullIfEmpty(m.Notes),
		m.IsActive,
		m.UpdatedAt,
	)
	if err != nil {
		if derr := translateConstraintError(err); derr != nil {
			return fmt.Errorf("%w: kas %d", derr, m.KasID)
		}
		return fmt.Errorf("failed to update kas %d: %w", m.KasID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: kas %d", apperrors.ErrNotFound, m.KasID)
	}
	return nil
}

// LinkSecondaryAccountInTx attaches a credit-card account code to a register
// within the caller's transaction. A nonexistent code violates the foreign
// key and surfaces as apperrors.ErrConflict.
func (r *PgxKasRepository) LinkSecondaryAccountInTx(ctx context.Context, tx pgx.Tx, kasID int64, accountCode string) error {
	query := `UPDATE kas SET secondary_account_code = $2, updated_at = $3 WHERE kas_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, kasID, accountCode, time.Now())
	if err != nil {
		if derr := translateConstraintError(err); derr != nil {
			return fmt.Errorf("%w: credit card account %s does not exist", derr, accountCode)
		}
		return fmt.Errorf("failed to link credit card account %s to kas %d: %w", accountCode, kasID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: kas %d", apperrors.ErrNotFound, kasID)
	}
	return nil
}

// DeleteKasInTx removes a register row within the caller's transaction.
func (r *PgxKasRepository) DeleteKasInTx(ctx context.Context, tx pgx.Tx, kasID int64) error {
	query := `DELETE FROM kas WHERE kas_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, kasID)
	if err != nil {
		return fmt.Errorf("failed to delete kas %d: %w", kasID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: kas %d", apperrors.ErrNotFound, kasID)
	}
	return nil
}

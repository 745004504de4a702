package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
)

// KasReader defines read operations for cash registers.
type KasReader interface {
	// FindKasByID retrieves a register by its surrogate id.
	FindKasByID(ctx context.Context, kasID int64) (*domain.Kas, error)

	// FindKasByName retrieves the first register whose name contains name,
	// case-insensitively.
	FindKasByName(ctx context.Context, name string) (*domain.Kas, error)

	// ExistsKasWithName reports whether a register with exactly this name
	// exists. Used for the lookup-before-create uniqueness check; the kas
	// table carries no unique constraint on name.
	ExistsKasWithName(ctx context.Context, name string) (bool, error)

	// ListKas returns all registers with the given active flag, optionally
	// filtered by a case-insensitive name fragment. The full result set is
	// returned; kas listings are not paginated.
	ListKas(ctx context.Context, name *string, isActive bool) ([]domain.Kas, error)
}

// KasTransactionSupport defines the register operations that participate in a
// caller-owned transaction.
type KasTransactionSupport interface {
	// FindKasByIDInTx retrieves a register by id within tx, locking the row.
	FindKasByIDInTx(ctx context.Context, tx pgx.Tx, kasID int64) (*domain.Kas, error)

	// SaveKasInTx inserts a new register row within tx and returns its id.
	SaveKasInTx(ctx context.Context, tx pgx.Tx, kas domain.Kas) (int64, error)

	// UpdateKasInTx rewrites the mutable fields of a register within tx.
	UpdateKasInTx(ctx context.Context, tx pgx.Tx, kas domain.Kas) error

	// LinkSecondaryAccountInTx attaches a credit-card account code to a
	// register within tx.
	LinkSecondaryAccountInTx(ctx context.Context, tx pgx.Tx, kasID int64, accountCode string) error

	// DeleteKasInTx removes a register row within tx.
	DeleteKasInTx(ctx context.Context, tx pgx.Tx, kasID int64) error
}

// KasRepository combines all register repository capabilities.
type KasRepository interface {
	KasReader
	KasTransactionSupport
}

// KasRepositoryWithTx extends KasRepository with transaction ownership.
type KasRepositoryWithTx interface {
	KasRepository
	TransactionManager
}

// RepositoryProvider bundles the concrete repositories handed to the service
// container.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	KasRepo     KasRepositoryWithTx
}

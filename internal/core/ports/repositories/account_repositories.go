package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByCode retrieves an account by its six character code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountByName retrieves the first account matching name.
	// Names are not guaranteed unique at this layer.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// FindAccountsByCodes retrieves multiple accounts keyed by code.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)
}

// AccountTransactionSupport defines the account operations that participate
// in a caller-owned transaction.
type AccountTransactionSupport interface {
	// CountAccountsByCodePrefixInTx counts accounts whose code starts with
	// prefix, reading within tx.
	CountAccountsByCodePrefixInTx(ctx context.Context, tx pgx.Tx, prefix string) (int64, error)

	// FindAccountByCodeInTx retrieves an account by code within tx.
	FindAccountByCodeInTx(ctx context.Context, tx pgx.Tx, code string) (*domain.Account, error)

	// SaveAccountInTx inserts a new account row within tx.
	SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// DeleteAccountByCodeInTx removes an account row within tx.
	DeleteAccountByCodeInTx(ctx context.Context, tx pgx.Tx, code string) error
}

// AccountRepository combines all account repository capabilities.
type AccountRepository interface {
	AccountReader
	AccountTransactionSupport
}

package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
)

// AkunReaderSvc defines lookup operations against the chart of accounts.
type AkunReaderSvc interface {
	// GetAccountByCode retrieves an account by its six character code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// GetAccountByName retrieves the first account matching name.
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)
}

// AkunMinterSvc defines the cash-account creation operations. Both methods
// run inside a caller-owned transaction so that code derivation and the kas
// rows that reference the new account commit atomically.
type AkunMinterSvc interface {
	// GenerateCashAccountCode derives the next unused code for the given
	// register type: "11" + type digits + zero padded sequence. The count
	// that feeds the sequence is read within tx.
	GenerateCashAccountCode(ctx context.Context, tx pgx.Tx, typeKas domain.TypeKas) (string, error)

	// CreateCashAccount mints a code and inserts a level-2 cash account with
	// operational cash-flow status within tx.
	CreateCashAccount(ctx context.Context, tx pgx.Tx, name string, typeKas domain.TypeKas) (*domain.Account, error)
}

// AkunSvcFacade combines the account directory capabilities.
type AkunSvcFacade interface {
	AkunReaderSvc
	AkunMinterSvc
}

package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
)

// accountUsageGuard is the placeholder implementation of the usage check.
// No journal/transaction subsystem exists yet, so every account reports as
// unused. Callers still treat a positive answer as fatal, which keeps the
// contract in place for when a real implementation replaces this one.
type accountUsageGuard struct{}

// NewAccountUsageGuard creates the current (placeholder) usage guard.
func NewAccountUsageGuard() portssvc.AccountUsageGuard {
	return &accountUsageGuard{}
}

var _ portssvc.AccountUsageGuard = (*accountUsageGuard)(nil)

// HasBeenUsed reports whether any financial record references accountCode.
// TODO: query journal lines for accountCode once the transaction ledger
// subsystem lands.
func (g *accountUsageGuard) HasBeenUsed(ctx context.Context, tx pgx.Tx, accountCode string) (bool, error) {
	return false, nil
}

package services

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// AccountUsageGuard reports whether any financial transaction references an
// account code. Update and delete on a register must consult the guard inside
// their transaction and abort with apperrors.ErrAlreadyUsed when it reports
// usage.
type AccountUsageGuard interface {
	HasBeenUsed(ctx context.Context, tx pgx.Tx, accountCode string) (bool, error)
}

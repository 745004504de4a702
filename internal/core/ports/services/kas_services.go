package services

import (
	"context"

	"github.com/sistemtoko/sistem_toko_app/internal/dto"
)

// KasSvcFacade defines the cash/bank register lifecycle operations.
// Create, update and delete each execute inside a single database
// transaction; no partial writes are ever observable.
type KasSvcFacade interface {
	// CreateKas mints a primary cash account, inserts the register and
	// optionally links a pre-existing credit-card account.
	CreateKas(ctx context.Context, req dto.CreateKasRequest) (*dto.KasResponse, error)

	// UpdateKas rewrites the mutable fields of an existing register after
	// the usage guard confirms its primary account has no recorded activity.
	UpdateKas(ctx context.Context, kasID int64, req dto.UpdateKasRequest) (*dto.KasResponse, error)

	// GetKasByID returns the register enriched with its resolved accounts.
	GetKasByID(ctx context.Context, kasID int64) (*dto.KasResponse, error)

	// GetKasByName returns the first register whose name contains name.
	GetKasByName(ctx context.Context, name string) (*dto.KasResponse, error)

	// ListKas returns registers filtered by an optional name fragment and
	// the active flag. The full result set is returned without pagination.
	ListKas(ctx context.Context, params dto.ListKasParams) ([]dto.KasResponse, error)

	// DeleteKas removes the register together with its primary account and,
	// when linked, its secondary account, and returns the last-known view.
	DeleteKas(ctx context.Context, kasID int64) (*dto.KasResponse, error)
}

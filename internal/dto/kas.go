package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
)

// CreateKasRequest defines the data needed to create a cash/bank register.
type CreateKasRequest struct {
	Name                 string          `json:"name" binding:"required,max=100"`
	TypeKas              domain.TypeKas  `json:"typeKas" binding:"required,oneof=01 02"`
	SecondaryAccountCode *string         `json:"secondaryAccountCode" binding:"omitempty,len=6,numeric"`
	BankAccountNumber    string          `json:"bankAccountNumber" binding:"omitempty,max=30"`
	Owner                string          `json:"owner" binding:"omitempty,max=100"`
	Balance              decimal.Decimal `json:"balance"`
	Notes                string          `json:"notes" binding:"omitempty,max=200"`
	IsActive             *bool           `json:"isActive"` // defaults to true when omitted
}

// UpdateKasRequest defines the data allowed when updating a register.
// Pointers distinguish "not provided" from zero-value updates.
type UpdateKasRequest struct {
	Name                 *string          `json:"name" binding:"omitempty,max=100"`
	SecondaryAccountCode *string          `json:"secondaryAccountCode" binding:"omitempty,len=6,numeric"`
	BankAccountNumber    *string          `json:"bankAccountNumber" binding:"omitempty,max=30"`
	Owner                *string          `json:"owner" binding:"omitempty,max=100"`
	Balance              *decimal.Decimal `json:"balance"`
	Notes                *string          `json:"notes" binding:"omitempty,max=200"`
	IsActive             *bool            `json:"isActive"`
}

// ListKasParams defines the query parameters for listing registers.
type ListKasParams struct {
	Name     *string `form:"name"`
	IsActive *bool   `form:"isActive"` // defaults to true when omitted
}

// KasResponse is the register view returned by every kas operation,
// combining the row with its resolved ledger accounts.
type KasResponse struct {
	ID                   int64            `json:"id"`
	PrimaryAccountCode   string           `json:"primaryAccountCode"`
	SecondaryAccountCode *string          `json:"secondaryAccountCode,omitempty"`
	Name                 string           `json:"name"`
	BankAccountNumber    string           `json:"bankAccountNumber"`
	Owner                string           `json:"owner"`
	Balance              decimal.Decimal  `json:"balance"`
	Notes                string           `json:"notes"`
	IsActive             bool             `json:"isActive"`
	PrimaryAccount       *AccountResponse `json:"primaryAccount,omitempty"`
	SecondaryAccount     *AccountResponse `json:"secondaryAccount,omitempty"`
}

// ToKasResponse converts a domain.Kas plus its resolved accounts to the view
// DTO. Either account may be nil when enrichment is skipped.
func ToKasResponse(kas *domain.Kas, primary *domain.Account, secondary *domain.Account) KasResponse {
	resp := KasResponse{
		ID:                 kas.KasID,
		PrimaryAccountCode: kas.PrimaryAccountCode,
		Name:               kas.Name,
		BankAccountNumber:  kas.BankAccountNumber,
		Owner:              kas.Owner,
		Balance:            kas.Balance,
		Notes:              kas.Notes,
		IsActive:           kas.IsActive,
	}
	if kas.SecondaryAccountCode != "" {
		code := kas.SecondaryAccountCode
		resp.SecondaryAccountCode = &code
	}
	if primary != nil {
		p := ToAccountResponse(primary)
		resp.PrimaryAccount = &p
	}
	if secondary != nil {
		s := ToAccountResponse(secondary)
		resp.SecondaryAccount = &s
	}
	return resp
}

package domain

import (
	"github.com/shopspring/decimal"
)

// TypeKas classifies a cash register as physical cash or a bank account.
// The two digits become the middle segment of the generated account code.
type TypeKas string

const (
	TypeKasCash TypeKas = "01"
	TypeKasBank TypeKas = "02"
)

// Valid reports whether t is one of the closed set of register types.
func (t TypeKas) Valid() bool {
	return t == TypeKasCash || t == TypeKasBank
}

// CodePrefix returns the four character account-code prefix for this type,
// e.g. "1101" for cash registers.
func (t TypeKas) CodePrefix() string {
	return CashAccountCodePrefix + string(t)
}

// Kas is a cash drawer or bank account record. It always owns exactly one
// primary ledger account (created and destroyed with it) and may reference a
// pre-existing credit-card account as its secondary account.
type Kas struct {
	KasID                int64           `json:"id"`
	Name                 string          `json:"name"`
	PrimaryAccountCode   string          `json:"primaryAccountCode"`
	SecondaryAccountCode string          `json:"secondaryAccountCode"` // empty when not linked
	BankAccountNumber    string          `json:"bankAccountNumber"`
	Owner                string          `json:"owner"`
	Balance              decimal.Decimal `json:"balance"`
	Notes                string          `json:"notes"`
	IsActive             bool            `json:"isActive"`
	AuditFields
}

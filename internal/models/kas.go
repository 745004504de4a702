package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kas is the row shape of the kas table.
// Note: SecondaryAccountCode and the descriptive fields are nullable in the
// DB; repositories use sql.Null* when scanning/binding them.
type Kas struct {
	KasID                int64           `db:"kas_id"`
	Name                 string          `db:"name"`
	PrimaryAccountCode   string          `db:"primary_account_code"`
	SecondaryAccountCode string          `db:"secondary_account_code"`
	BankAccountNumber    string          `db:"bank_account_number"`
	Owner                string          `db:"owner"`
	Balance              decimal.Decimal `db:"balance"`
	Notes                string          `db:"notes"`
	IsActive             bool            `db:"is_active"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

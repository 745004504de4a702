package models

import "time"

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

const (
	CashAccount AccountType = "CASH"
	Receivable  AccountType = "RECEIVABLE"
	Inventory   AccountType = "INVENTORY"
	Payable     AccountType = "PAYABLE"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	Expense     AccountType = "EXPENSE"
)

// CashFlowStatus mirrors domain.CashFlowStatus for DB storage.
type CashFlowStatus string

const (
	OperationalCashFlow CashFlowStatus = "OPERATIONAL"
	InvestingCashFlow   CashFlowStatus = "INVESTING"
	FinancingCashFlow   CashFlowStatus = "FINANCING"
	NoCashFlow          CashFlowStatus = "NONE"
)

// Account is the row shape of the akun table.
type Account struct {
	Code           string         `db:"code"`
	Name           string         `db:"name"`
	Level          int            `db:"level"`
	AccountType    AccountType    `db:"account_type"`
	CashFlowStatus CashFlowStatus `db:"cash_flow_status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

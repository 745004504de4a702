package domain

// AccountType classifies an entry in the chart of accounts.
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

// CashFlowStatus marks how an account participates in cash-flow reporting.
type CashFlowStatus string

const (
	OperationalCashFlow CashFlowStatus = "OPERATIONAL"
	InvestingCashFlow   CashFlowStatus = "INVESTING"
	FinancingCashFlow   CashFlowStatus = "FINANCING"
	NoCashFlow          CashFlowStatus = "NONE"
)

// CashAccountCodePrefix is the leading segment of every cash/bank account
// code. The full code is prefix + TypeKas digits + a two digit sequence,
// six characters in total.
const CashAccountCodePrefix = "11"

// CashAccountLevel is the fixed classification depth of cash-type accounts
// minted by the account directory.
const CashAccountLevel = 2

// Account is a ledger entry in the chart of accounts (akun).
// Code is unique and immutable once assigned.
type Account struct {
	Code           string         `json:"code"`
	Name           string         `json:"name"`
	Level          int            `json:"level"`
	AccountType    AccountType    `json:"accountType"`
	CashFlowStatus CashFlowStatus `json:"cashFlowStatus"`
	AuditFields
}

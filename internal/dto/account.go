package dto

import (
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
)

// AccountResponse defines the data returned for a chart-of-accounts entry.
type AccountResponse struct {
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	Level          int                   `json:"level"`
	AccountType    domain.AccountType    `json:"accountType"`
	CashFlowStatus domain.CashFlowStatus `json:"cashFlowStatus"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:           acc.Code,
		Name:           acc.Name,
		Level:          acc.Level,
		AccountType:    acc.AccountType,
		CashFlowStatus: acc.CashFlowStatus,
	}
}

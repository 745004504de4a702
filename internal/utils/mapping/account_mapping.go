package mapping

import (
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	"github.com/sistemtoko/sistem_toko_app/internal/models"
)

// ToModelAccount converts a domain.Account to its DB row shape.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		Code:           d.Code,
		Name:           d.Name,
		Level:          d.Level,
		AccountType:    models.AccountType(d.AccountType),
		CashFlowStatus: models.CashFlowStatus(d.CashFlowStatus),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainAccount converts a DB row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:           m.Code,
		Name:           m.Name,
		Level:          m.Level,
		AccountType:    domain.AccountType(m.AccountType),
		CashFlowStatus: domain.CashFlowStatus(m.CashFlowStatus),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

package mapping

import (
	"github.com/sistemtoko/sistem_toko_app/internal/core/domain"
	"github.com/sistemtoko/sistem_toko_app/internal/models"
)

// ToModelKas converts a domain.Kas to its DB row shape.
func ToModelKas(d domain.Kas) models.Kas {
	return models.Kas{
		KasID:                d.KasID,
		Name:                 d.Name,
		PrimaryAccountCode:   d.PrimaryAccountCode,
		SecondaryAccountCode: d.SecondaryAccountCode,
		BankAccountNumber:    d.BankAccountNumber,
		Owner:                d.Owner,
		Balance:              d.Balance,
		Notes:                d.Notes,
		IsActive:             d.IsActive,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

// ToDomainKas converts a DB row to the domain representation.
func ToDomainKas(m models.Kas) domain.Kas {
	return domain.Kas{
		KasID:                m.KasID,
		Name:                 m.Name,
		PrimaryAccountCode:   m.PrimaryAccountCode,
		SecondaryAccountCode: m.SecondaryAccountCode,
		BankAccountNumber:    m.BankAccountNumber,
		Owner:                m.Owner,
		Balance:              m.Balance,
		Notes:                m.Notes,
		IsActive:             m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

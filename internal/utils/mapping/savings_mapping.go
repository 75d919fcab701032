package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelSavings converts a domain Savings row to a model Savings row
func ToModelSavings(d domain.Savings) models.Savings {
	return models.Savings{
		SavingsID:   d.SavingsID,
		UserID:      d.UserID,
		Currency:    d.Currency,
		Amount:      d.Amount,
		Date:        d.Date,
		Note:        d.Note,
		TransferID:  d.TransferID,
		Locked:      d.Locked,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSavings converts a model Savings row to a domain Savings row
func ToDomainSavings(m models.Savings) domain.Savings {
	return domain.Savings{
		SavingsID:   m.SavingsID,
		UserID:      m.UserID,
		Currency:    m.Currency,
		Amount:      m.Amount,
		Date:        m.Date,
		Note:        m.Note,
		TransferID:  m.TransferID,
		Locked:      m.Locked,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSavingsSlice converts a slice of model Savings rows to domain rows
func ToDomainSavingsSlice(ms []models.Savings) []domain.Savings {
	ds := make([]domain.Savings, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavings(m)
	}
	return ds
}

package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		Currency:    d.Currency,
		Amount:      d.Amount,
		Category:    models.EntryCategory(d.Category),
		TypeID:      d.TypeID,
		Date:        d.Date,
		Note:        d.Note,
		Locked:      d.Locked,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Currency:    m.Currency,
		Amount:      m.Amount,
		Category:    domain.EntryCategory(m.Category),
		TypeID:      m.TypeID,
		Date:        m.Date,
		Note:        m.Note,
		Locked:      m.Locked,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model Entries to domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}

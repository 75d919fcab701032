package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelEntryType converts a domain EntryType to its model
func ToModelEntryType(d domain.EntryType) models.EntryType {
	return models.EntryType{
		TypeID:      d.TypeID,
		UserID:      d.UserID,
		Name:        d.Name,
		Category:    models.EntryCategory(d.Category),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntryType converts a model EntryType to its domain form
func ToDomainEntryType(m models.EntryType) domain.EntryType {
	return domain.EntryType{
		TypeID:      m.TypeID,
		UserID:      m.UserID,
		Name:        m.Name,
		Category:    domain.EntryCategory(m.Category),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntryTypeSlice converts model entry types to domain entry types
func ToDomainEntryTypeSlice(ms []models.EntryType) []domain.EntryType {
	ds := make([]domain.EntryType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntryType(m)
	}
	return ds
}

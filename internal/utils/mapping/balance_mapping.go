package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelBalanceSnapshot converts a domain BalanceSnapshot to its model
func ToModelBalanceSnapshot(d domain.BalanceSnapshot) models.BalanceSnapshot {
	return models.BalanceSnapshot{
		BalanceID:     d.BalanceID,
		UserID:        d.UserID,
		Currency:      d.Currency,
		Month:         d.Month.String(),
		InitialAmount: d.InitialAmount,
		Amount:        d.Amount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBalanceSnapshot converts a model BalanceSnapshot to its domain form
func ToDomainBalanceSnapshot(m models.BalanceSnapshot) domain.BalanceSnapshot {
	return domain.BalanceSnapshot{
		BalanceID:     m.BalanceID,
		UserID:        m.UserID,
		Currency:      m.Currency,
		Month:         domain.Month(m.Month),
		InitialAmount: m.InitialAmount,
		Amount:        m.Amount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBalanceSnapshotSlice converts model snapshots to domain snapshots
func ToDomainBalanceSnapshotSlice(ms []models.BalanceSnapshot) []domain.BalanceSnapshot {
	ds := make([]domain.BalanceSnapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBalanceSnapshot(m)
	}
	return ds
}

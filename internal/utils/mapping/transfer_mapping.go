package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:  d.TransferID,
		UserID:      d.UserID,
		Currency:    d.Currency,
		Amount:      d.Amount,
		FromAccount: string(d.FromAccount),
		ToAccount:   string(d.ToAccount),
		Date:        d.Date,
		Note:        d.Note,
		Locked:      d.Locked,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:  m.TransferID,
		UserID:      m.UserID,
		Currency:    m.Currency,
		Amount:      m.Amount,
		FromAccount: domain.AccountName(m.FromAccount),
		ToAccount:   domain.AccountName(m.ToAccount),
		Date:        m.Date,
		Note:        m.Note,
		Locked:      m.Locked,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransferSlice converts a slice of model Transfers to domain Transfers
func ToDomainTransferSlice(ms []models.Transfer) []domain.Transfer {
	ds := make([]domain.Transfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransfer(m)
	}
	return ds
}

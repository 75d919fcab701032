package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelClosedMonth converts a domain ClosedMonth to its model
func ToModelClosedMonth(d domain.ClosedMonth) models.ClosedMonth {
	return models.ClosedMonth{
		ClosedMonthID: d.ClosedMonthID,
		UserID:        d.UserID,
		Currency:      d.Currency,
		Month:         d.Month.String(),
		ClosedAt:      d.ClosedAt,
	}
}

// ToDomainClosedMonth converts a model ClosedMonth to its domain form
func ToDomainClosedMonth(m models.ClosedMonth) domain.ClosedMonth {
	return domain.ClosedMonth{
		ClosedMonthID: m.ClosedMonthID,
		UserID:        m.UserID,
		Currency:      m.Currency,
		Month:         domain.Month(m.Month),
		ClosedAt:      m.ClosedAt,
	}
}

// ToModelMonthCloseAudit converts a domain MonthCloseAudit to its model
func ToModelMonthCloseAudit(d domain.MonthCloseAudit) models.MonthCloseAudit {
	return models.MonthCloseAudit{
		AuditID:               d.AuditID,
		UserID:                d.UserID,
		Currency:              d.Currency,
		Month:                 d.Month.String(),
		CalculatedMoneyOnHand: d.CalculatedMoneyOnHand,
		EnteredMoneyOnHand:    d.EnteredMoneyOnHand,
		CalculatedSavings:     d.CalculatedSavings,
		EnteredSavings:        d.EnteredSavings,
		DifferenceMoneyOnHand: d.DifferenceMoneyOnHand,
		DifferenceSavings:     d.DifferenceSavings,
		ClosedAt:              d.ClosedAt,
		Note:                  d.Note,
	}
}

// ToDomainMonthCloseAudit converts a model MonthCloseAudit to its domain form
func ToDomainMonthCloseAudit(m models.MonthCloseAudit) domain.MonthCloseAudit {
	return domain.MonthCloseAudit{
		AuditID:               m.AuditID,
		UserID:                m.UserID,
		Currency:              m.Currency,
		Month:                 domain.Month(m.Month),
		CalculatedMoneyOnHand: m.CalculatedMoneyOnHand,
		EnteredMoneyOnHand:    m.EnteredMoneyOnHand,
		CalculatedSavings:     m.CalculatedSavings,
		EnteredSavings:        m.EnteredSavings,
		DifferenceMoneyOnHand: m.DifferenceMoneyOnHand,
		DifferenceSavings:     m.DifferenceSavings,
		ClosedAt:              m.ClosedAt,
		Note:                  m.Note,
	}
}

package mapping

import (
	"github.com/fadee/my_expenses_app/internal/core/domain"
	"github.com/fadee/my_expenses_app/internal/models"
)

// ToModelUser converts a domain User to its model
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:      d.UserID,
		Username:    d.Username,
		PINHash:     d.PINHash,
		Email:       d.Email,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to its domain form
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Username:    m.Username,
		PINHash:     m.PINHash,
		Email:       m.Email,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

package mapping

import (
	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/elephantbook/eb-backend/internal/models"
)

// ToModelAccount converts a domain.Account to its database row representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		AccountType: d.AccountType,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainAccount converts a database row to a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		AccountType: m.AccountType,
		CreatedAt:   m.CreatedAt,
	}
}

package services

import (
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	portssvc "github.com/elephantbook/eb-backend/internal/core/ports/services"
	"github.com/elephantbook/eb-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Account = NewAccountService(repos.AccountRepo, repos.LedgerRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.CategoryRepo, repos.LedgerRepo)

	return container
}

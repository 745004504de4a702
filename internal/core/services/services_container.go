package services

import (
	portsrepo "github.com/sistemtoko/sistem_toko_app/internal/core/ports/repositories"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly wired
// dependencies. The kas service shares the account directory so creation,
// update and delete coordinate over the same repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Akun = NewAkunService(repos.AccountRepo)
	container.Kas = NewKasService(
		repos.KasRepo,
		repos.AccountRepo,
		container.Akun,
		NewAccountUsageGuard(),
	)

	return container
}

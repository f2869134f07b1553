package services

import (
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, practiceOptions ...PracticeServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Practice:  NewPracticeService(repos.PracticeRepo, practiceOptions...),
		Scripture: NewScriptureService(repos.Corpus),
		Catalog:   NewCatalogService(repos.Catalog),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PracticeSvcFacade = (*practiceService)(nil)
	_ portssvc.ScriptureSvc      = (*scriptureService)(nil)
	_ portssvc.CatalogSvc        = (*catalogService)(nil)
)

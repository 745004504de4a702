package services

// ServiceContainer holds instances of all the application services.
// Handlers access functionality exclusively through this container.
type ServiceContainer struct {
	Akun AkunSvcFacade
	Kas  KasSvcFacade
}

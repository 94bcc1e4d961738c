// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProviderGateway: provider reads and mutations against the REST API
//   - UserGateway: onboarding completion and username availability
//   - ConnectionGateway: recommender suggestions and connection requests
//   - CollectionStore: the page-scoped provider collection and liked-set
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

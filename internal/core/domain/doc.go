// Package domain defines the core business entities for the Trust Circle client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Provider: A canonical recommended service provider
//   - RawProvider: A loosely-typed provider record from the REST boundary
//   - ReviewDraft: A review being composed for a provider
//   - Wizard: The onboarding step machine
//   - Identity: The signed-in viewer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

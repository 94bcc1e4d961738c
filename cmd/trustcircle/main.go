// Command trustcircle is the Trust Circle command-line client. It
// wires the REST gateway, the page collection store, and the TOML
// config store into the core services, then hands off to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/trustcircle/trustcircle-cli/internal/adapters/driven/config/file"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driven/rest"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driven/storage/memory"
	"github.com/trustcircle/trustcircle-cli/internal/adapters/driving/cli"
	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	baseURL := configStore.GetString(file.KeyAPIBaseURL)
	if env := os.Getenv("TRUSTCIRCLE_API_URL"); env != "" {
		baseURL = env
	}
	if baseURL == "" {
		baseURL = rest.DefaultBaseURL
	}

	token := configStore.GetString(file.KeyAPIToken)
	if env := os.Getenv("TRUSTCIRCLE_API_TOKEN"); env != "" {
		token = env
	}

	identity := domain.Identity{
		UserID:    configStore.GetString(file.KeyUserID),
		Email:     configStore.GetString(file.KeyEmail),
		FirstName: configStore.GetString(file.KeyFirstName),
		LastName:  configStore.GetString(file.KeyLastName),
	}

	client := rest.NewClient(baseURL, token)
	store := memory.NewCollection()

	cli.SetServices(cli.Services{
		Catalog:    services.NewCatalogService(client, store, identity),
		Likes:      services.NewLikeService(client, store, identity),
		Reviews:    services.NewReviewService(client, store, identity),
		Onboarding: services.NewOnboardingService(client, client, identity),
		Store:      store,
		Config:     configStore,
	})

	return cli.Execute()
}

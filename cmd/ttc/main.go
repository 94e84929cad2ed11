package main

import (
	"fmt"
	"os"

	"time-tracker-client/internal/api"
	"time-tracker-client/internal/cli"
	"time-tracker-client/internal/client"
	"time-tracker-client/internal/config"
	"time-tracker-client/internal/storage"
)

// newAPI wires the session store and backend client from the final
// configuration. The root command calls it after command-line flags have been
// applied, so the flags feed the wiring they describe.
func newAPI(cfg *config.Config) (api.API, func() error, error) {
	if err := os.MkdirAll(cfg.Storage.Dir, os.FileMode(cfg.Storage.DirPermissions)); err != nil {
		return nil, nil, fmt.Errorf("creating storage directory: %w", err)
	}
	store, err := storage.New(cfg.GetStoragePath(), cfg.Storage.KeyPrefix)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session store: %w", err)
	}
	session := storage.NewSession(store)

	// The backend client pulls its token from the session store on every
	// request, so logging in and out needs no client rebuild.
	backend := client.New(cfg.Backend.BaseURL, session.Token,
		client.WithRequestTimeout(cfg.Backend.RequestTimeout))

	return api.New(backend, session), store.Close, nil
}

func main() {
	// Load configuration: defaults, then .env, then environment variables.
	// Command line flags are applied by the root command before any
	// subcommand runs.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(newAPI, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

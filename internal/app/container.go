// Package app provides the dependency injection container for the application.
package app

import (
	"os"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
	"github.com/mhnuk2007/todoAppTutorial/internal/infra/blobstore"
	"github.com/mhnuk2007/todoAppTutorial/internal/infra/config"
	"github.com/mhnuk2007/todoAppTutorial/internal/infra/logging"
	"github.com/mhnuk2007/todoAppTutorial/internal/infra/prompt"
	"github.com/mhnuk2007/todoAppTutorial/internal/store"
)

// Container provides dependency injection for the application.
// It holds all port implementations and builds the task store.
type Container struct {
	Blobs   domain.BlobStore
	Clock   domain.Clock
	Confirm domain.Confirmer
	Logger  domain.Logger
	Config  *config.Config
}

// New creates a Container for the given working directory, loading
// configuration and binding the real port implementations.
func New(dir string) (*Container, error) {
	cfg, err := config.NewLoader(dir).Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Blobs:   blobstore.New(cfg.DataDir),
		Clock:   domain.RealClock{},
		Confirm: prompt.New(os.Stdin, os.Stderr),
		Logger:  logger,
		Config:  cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *config.Config, blobs domain.BlobStore, clock domain.Clock, confirm domain.Confirmer, logger domain.Logger) *Container {
	return &Container{
		Blobs:   blobs,
		Clock:   clock,
		Confirm: confirm,
		Logger:  logger,
		Config:  cfg,
	}
}

// Close releases resources held by the container, currently just the
// log file.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Store builds a TaskStore loaded from the persisted blob, gated by the
// container's confirmer.
func (c *Container) Store() (*store.TaskStore, error) {
	return c.StoreWith(c.Confirm)
}

// StoreWith builds a TaskStore with a specific confirmer. Surfaces that
// confirm destructive actions themselves (the TUI, --yes flags) pass
// prompt.AlwaysYes.
func (c *Container) StoreWith(confirm domain.Confirmer) (*store.TaskStore, error) {
	s := store.New(c.Blobs, c.Clock, confirm, c.Logger)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

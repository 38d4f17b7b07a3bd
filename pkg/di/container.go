// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/prodfile/pkg/api"     //nolint:depguard
	"github.com/ssargent/prodfile/pkg/catalog" //nolint:depguard
	"github.com/ssargent/prodfile/pkg/config"  //nolint:depguard
	"github.com/ssargent/prodfile/pkg/logging" //nolint:depguard
	"github.com/ssargent/prodfile/pkg/store"   //nolint:depguard
)

// CatalogOpener opens a catalog over a record store
type CatalogOpener func(cfg store.StoreConfig, opts catalog.Options) (*catalog.Catalog, error)

// Container holds all the dependencies for the application
type Container struct {
	catalogOpener CatalogOpener
	serverFactory api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		catalogOpener: catalog.Open,
		serverFactory: api.NewServerFactory(),
	}
}

// OpenCatalog opens the catalog described by cfg. Read-only mode requires
// the data file to exist already.
func (c *Container) OpenCatalog(cfg *config.Config, readOnly bool) (*catalog.Catalog, error) {
	logger := logging.L()

	return c.catalogOpener(store.StoreConfig{
		FilePath:    cfg.DataFile,
		ReadOnly:    readOnly,
		SyncOnWrite: cfg.Storage.SyncOnWrite,
		Logger:      logger,
	}, catalog.Options{
		RequireNumericID: cfg.Validation.RequireNumericID,
		Logger:           logger,
	})
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// SetCatalogOpener allows overriding how catalogs are opened (for testing)
func (c *Container) SetCatalogOpener(opener CatalogOpener) {
	c.catalogOpener = opener
}

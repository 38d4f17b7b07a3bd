package di

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ssargent/prodfile/pkg/api"
	"github.com/ssargent/prodfile/pkg/catalog"
	"github.com/ssargent/prodfile/pkg/config"
	"github.com/ssargent/prodfile/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStarter struct{}

func (stubStarter) StartServer(context.Context, api.ProductService, api.ServerConfig) error {
	return nil
}

type stubFactory struct{}

func (stubFactory) CreateServerStarter() api.ServerStarter { return stubStarter{} }

func TestContainer_OpenCatalog(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataFile = filepath.Join(t.TempDir(), "products.dat")
	cfg.Validation.RequireNumericID = true

	c := NewContainer()

	cat, err := c.OpenCatalog(cfg, false)
	require.NoError(t, err)
	defer cat.Close()

	_, err = cat.AddRecord("Bolt", "Steel bolt", "ABC123", "1.50")
	assert.True(t, catalog.IsValidation(err))

	index, err := cat.AddRecord("Bolt", "Steel bolt", "000123", "1.50")
	require.NoError(t, err)
	assert.Equal(t, int64(0), index)
	assert.Equal(t, cfg.DataFile, cat.Stats().Path)
}

func TestContainer_OpenCatalogReadOnlyMissing(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataFile = filepath.Join(t.TempDir(), "missing.dat")

	_, err := NewContainer().OpenCatalog(cfg, true)
	assert.True(t, errors.Is(err, store.ErrStoreNotFound))
}

func TestContainer_Overrides(t *testing.T) {
	c := NewContainer()
	assert.IsType(t, &api.DefaultServerFactory{}, c.GetServerFactory())

	c.SetServerFactory(stubFactory{})
	assert.IsType(t, stubFactory{}, c.GetServerFactory())

	var seen store.StoreConfig
	c.SetCatalogOpener(func(cfg store.StoreConfig, opts catalog.Options) (*catalog.Catalog, error) {
		seen = cfg
		return nil, errors.New("not today")
	})

	cfg := config.DefaultConfig()
	cfg.Storage.SyncOnWrite = false
	_, err := c.OpenCatalog(cfg, true)
	assert.EqualError(t, err, "not today")
	assert.Equal(t, cfg.DataFile, seen.FilePath)
	assert.True(t, seen.ReadOnly)
	assert.False(t, seen.SyncOnWrite)
	assert.NotNil(t, seen.Logger)
}

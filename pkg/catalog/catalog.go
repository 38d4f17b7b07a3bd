// Package catalog is the entry point used by the CLI and the REST API. It
// applies the input rules for new products and runs name searches over a
// record store.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ssargent/prodfile/pkg/codec"
	"github.com/ssargent/prodfile/pkg/store"
)

// Store defines the record store operations a catalog depends on
type Store interface {
	Append(p codec.Product) (int64, error)
	ReadAt(index int64) (codec.Product, error)
	Iterator() store.ProductIterator
	Count() int64
	Size() int64
	Path() string
	Close() error
}

// Options configures a catalog
type Options struct {
	RequireNumericID bool
	Logger           *zerolog.Logger // Optional; nil discards catalog logs
}

// Stats summarises the backing store
type Stats struct {
	Records    int64  `json:"records"`
	SizeBytes  int64  `json:"size_bytes"`
	RecordSize int    `json:"record_size"`
	Path       string `json:"path"`
}

// Catalog validates input and forwards it to a record store
type Catalog struct {
	store     Store
	validator Validator
	logger    zerolog.Logger
}

// New creates a catalog over an already open store
func New(st Store, opts Options) *Catalog {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "catalog").Logger()
	}

	return &Catalog{
		store:     st,
		validator: Validator{RequireNumericID: opts.RequireNumericID},
		logger:    logger,
	}
}

// Open opens a record store and wraps it in a catalog. The store logger
// defaults to the catalog logger.
func Open(config store.StoreConfig, opts Options) (*Catalog, error) {
	if config.Logger == nil {
		config.Logger = opts.Logger
	}

	st, err := store.Open(config)
	if err != nil {
		return nil, err
	}
	return New(st, opts), nil
}

// AddRecord validates raw field text and appends the product. It returns
// the index of the new record.
func (c *Catalog) AddRecord(name, description, id, costText string) (int64, error) {
	p, err := c.validator.ParseProduct(name, description, id, costText)
	if err != nil {
		c.logger.Debug().Err(err).Msg("rejected product")
		return 0, err
	}
	return c.appendProduct(p)
}

// Add validates an already typed product and appends it
func (c *Catalog) Add(p codec.Product) (int64, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ID = strings.TrimSpace(p.ID)

	if err := c.validator.Validate(p); err != nil {
		c.logger.Debug().Err(err).Msg("rejected product")
		return 0, err
	}
	return c.appendProduct(p)
}

func (c *Catalog) appendProduct(p codec.Product) (int64, error) {
	index, err := c.store.Append(p)
	if err != nil {
		c.logger.Error().Err(err).Str("id", p.ID).Msg("failed to append product")
		return 0, fmt.Errorf("failed to write product: %w", err)
	}

	c.logger.Info().
		Int64("index", index).
		Str("id", p.ID).
		Str("name", p.Name).
		Msg("product added")
	return index, nil
}

// Search returns the products whose name contains term, ignoring case, in
// storage order. Surrounding whitespace is ignored and an empty term is rejected.
func (c *Catalog) Search(term string) ([]codec.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid(EmptySearchTerm, "", "please enter a search term")
	}

	matches, err := store.Search(c.store, term)
	if err != nil {
		c.logger.Error().Err(err).Str("term", term).Msg("search failed")
		return nil, err
	}

	c.logger.Debug().Str("term", term).Int("matches", len(matches)).Msg("search complete")
	return matches, nil
}

// Get returns the product at index
func (c *Catalog) Get(index int64) (codec.Product, error) {
	return c.store.ReadAt(index)
}

// List returns every product in storage order
func (c *Catalog) List() ([]codec.Product, error) {
	it := c.store.Iterator()
	defer it.Close()

	products := make([]codec.Product, 0, c.store.Count())
	for it.Next() {
		products = append(products, it.Product())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// Stats reports the size of the backing store
func (c *Catalog) Stats() Stats {
	return Stats{
		Records:    c.store.Count(),
		SizeBytes:  c.store.Size(),
		RecordSize: codec.RecordSize,
		Path:       c.store.Path(),
	}
}

// Close closes the backing store
func (c *Catalog) Close() error {
	return c.store.Close()
}

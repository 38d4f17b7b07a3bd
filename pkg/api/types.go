package api

import (
	"github.com/ssargent/prodfile/pkg/catalog"
	"github.com/ssargent/prodfile/pkg/codec"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateProductRequest is the body of POST /api/v1/products. Cost may be
// sent as a JSON number or as a string.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ID          string   `json:"id"`
	Cost        CostText `json:"cost"`
}

// CreateProductResponse is returned after a product is stored
type CreateProductResponse struct {
	Index   int64 `json:"index"`
	Records int64 `json:"records"`
}

// ProductListResponse holds a list or search result
type ProductListResponse struct {
	Query    string          `json:"query,omitempty"`
	Count    int             `json:"count"`
	Products []codec.Product `json:"products"`
}

// ProductResponse holds a single product and its position
type ProductResponse struct {
	Index   int64         `json:"index"`
	Product codec.Product `json:"product"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // Empty disables API key checks
}

// ProductService defines the catalog operations served over HTTP
type ProductService interface {
	AddRecord(name, description, id, costText string) (int64, error)
	Search(term string) ([]codec.Product, error)
	Get(index int64) (codec.Product, error)
	List() ([]codec.Product, error)
	Stats() catalog.Stats
}

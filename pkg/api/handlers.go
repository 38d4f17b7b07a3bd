package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/ssargent/prodfile/pkg/catalog"
	"github.com/ssargent/prodfile/pkg/codec"
	"github.com/ssargent/prodfile/pkg/logging"
	"github.com/ssargent/prodfile/pkg/store"
)

// Server holds the API server state
type Server struct {
	catalog ProductService
	config  ServerConfig
	metrics *Metrics
	logger  zerolog.Logger
}

// NewServer creates a new API server
func NewServer(svc ProductService, config ServerConfig, metrics *Metrics) *Server {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	s := &Server{
		catalog: svc,
		config:  config,
		metrics: metrics,
		logger:  logging.WithComponent("api"),
	}
	s.refreshStoreStats()
	return s
}

func (s *Server) refreshStoreStats() {
	stats := s.catalog.Stats()
	s.metrics.UpdateStoreStats(stats.Records, stats.SizeBytes)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordStoreOperation("add", false, time.Since(start))
		sendError(w, "Invalid JSON request", http.StatusBadRequest)
		return
	}

	index, err := s.catalog.AddRecord(req.Name, req.Description, req.ID, string(req.Cost))
	if err != nil {
		s.metrics.RecordStoreOperation("add", false, time.Since(start))
		s.writeServiceError(w, r, err)
		return
	}

	s.metrics.RecordStoreOperation("add", true, time.Since(start))
	stats := s.catalog.Stats()
	s.metrics.UpdateStoreStats(stats.Records, stats.SizeBytes)

	sendJSON(w, http.StatusCreated, CreateProductResponse{Index: index, Records: stats.Records})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	var (
		products []codec.Product
		err      error
		op       = "list"
	)
	if _, ok := query["q"]; ok {
		op = "search"
		products, err = s.catalog.Search(query.Get("q"))
	} else {
		products, err = s.catalog.List()
	}
	if err != nil {
		s.metrics.RecordStoreOperation(op, false, time.Since(start))
		s.writeServiceError(w, r, err)
		return
	}
	s.metrics.RecordStoreOperation(op, true, time.Since(start))

	if products == nil {
		products = []codec.Product{}
	}
	sendSuccess(w, ProductListResponse{
		Query:    query.Get("q"),
		Count:    len(products),
		Products: products,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	index, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		sendError(w, "Index must be an integer", http.StatusBadRequest)
		return
	}

	product, err := s.catalog.Get(index)
	if err != nil {
		s.metrics.RecordStoreOperation("get", false, time.Since(start))
		s.writeServiceError(w, r, err)
		return
	}
	s.metrics.RecordStoreOperation("get", true, time.Since(start))

	sendSuccess(w, ProductResponse{Index: index, Product: product})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.catalog.Stats()
	s.metrics.UpdateStoreStats(stats.Records, stats.SizeBytes)
	sendSuccess(w, stats)
}

// writeServiceError maps catalog and store errors onto HTTP status codes
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		s.metrics.RecordValidationFailure(string(ve.Kind))
		sendError(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrOutOfRange):
		sendError(w, "Product not found", http.StatusNotFound)
	default:
		logger := logging.FromContext(r.Context())
		logger.Error().Err(err).Msg("request failed")
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

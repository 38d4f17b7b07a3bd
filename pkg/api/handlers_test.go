package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ssargent/prodfile/pkg/catalog"
	"github.com/ssargent/prodfile/pkg/codec"
	"github.com/ssargent/prodfile/pkg/store"
)

func setupTestServer(t *testing.T, config ServerConfig) (*Server, *catalog.Catalog) {
	t.Helper()

	cat, err := catalog.Open(store.StoreConfig{FilePath: filepath.Join(t.TempDir(), "products.dat")}, catalog.Options{})
	if err != nil {
		t.Fatalf("Failed to open catalog: %v", err)
	}
	t.Cleanup(func() { _ = cat.Close() })

	return NewServer(cat, config, NewMetrics(nil)), cat
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, data interface{}) APIResponse {
	t.Helper()

	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("Failed to decode response data: %v", err)
		}
	}
	return APIResponse{Success: raw.Success, Error: raw.Error}
}

func withIndexParam(req *http.Request, index string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("index", index)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestServer_handleHealth(t *testing.T) {
	server, _ := setupTestServer(t, ServerConfig{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var data map[string]string
	response := decodeResponse(t, w, &data)
	if !response.Success {
		t.Error("Expected success to be true")
	}
	if data["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %q", data["status"])
	}
}

func TestServer_handleCreateProduct(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid product with numeric cost",
			body:           `{"name":"Bolt","description":"Steel bolt","id":"000123","cost":1.50}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "valid product with string cost",
			body:           `{"name":"Bolt","description":"Steel bolt","id":"000123","cost":"1.50"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing cost",
			body:           `{"name":"Bolt","description":"Steel bolt","id":"000123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "all fields are required",
		},
		{
			name:           "short id",
			body:           `{"name":"Bolt","description":"Steel bolt","id":"123","cost":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "id: must be exactly 6 characters",
		},
		{
			name:           "negative cost",
			body:           `{"name":"Bolt","description":"Steel bolt","id":"000123","cost":-2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "cost: cannot be negative",
		},
		{
			name:           "bool cost",
			body:           `{"name":"Bolt","description":"Steel bolt","id":"000123","cost":true}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON request",
		},
		{
			name:           "invalid json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := setupTestServer(t, ServerConfig{})

			req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.handleCreateProduct(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			var created CreateProductResponse
			response := decodeResponse(t, w, &created)
			if tt.expectedError != "" {
				if !strings.Contains(response.Error, tt.expectedError) {
					t.Errorf("Expected error containing %q, got %q", tt.expectedError, response.Error)
				}
				return
			}
			if created.Index != 0 || created.Records != 1 {
				t.Errorf("Unexpected create response: %+v", created)
			}
		})
	}
}

func TestServer_handleListProducts(t *testing.T) {
	server, cat := setupTestServer(t, ServerConfig{})

	if _, err := cat.AddRecord("Bolt", "Steel bolt", "000123", "1.50"); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}
	if _, err := cat.AddRecord("Bolt Cutter", "Tool", "000124", "25.0"); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}
	if _, err := cat.AddRecord("Widget", "Thing", "000125", "3"); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedNames  []string
	}{
		{name: "list all", url: "/api/v1/products", expectedStatus: http.StatusOK, expectedNames: []string{"Bolt", "Bolt Cutter", "Widget"}},
		{name: "search", url: "/api/v1/products?q=bolt", expectedStatus: http.StatusOK, expectedNames: []string{"Bolt", "Bolt Cutter"}},
		{name: "search upper case", url: "/api/v1/products?q=CUTTER", expectedStatus: http.StatusOK, expectedNames: []string{"Bolt Cutter"}},
		{name: "search no match", url: "/api/v1/products?q=gadget", expectedStatus: http.StatusOK, expectedNames: []string{}},
		{name: "empty search term", url: "/api/v1/products?q=", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()

			server.handleListProducts(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var list ProductListResponse
			decodeResponse(t, w, &list)
			if list.Count != len(tt.expectedNames) || len(list.Products) != len(tt.expectedNames) {
				t.Fatalf("Expected %d products, got %+v", len(tt.expectedNames), list)
			}
			for i, name := range tt.expectedNames {
				if list.Products[i].Name != name {
					t.Errorf("Product %d: expected %q, got %q", i, name, list.Products[i].Name)
				}
			}
		})
	}
}

func TestServer_handleListProducts_EmptyStoreReturnsArray(t *testing.T) {
	server, _ := setupTestServer(t, ServerConfig{})

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	w := httptest.NewRecorder()
	server.handleListProducts(w, req)

	if !bytes.Contains(w.Body.Bytes(), []byte(`"products":[]`)) {
		t.Errorf("Expected empty products array, got %s", w.Body.String())
	}
}

func TestServer_handleGetProduct(t *testing.T) {
	server, cat := setupTestServer(t, ServerConfig{})

	if _, err := cat.AddRecord("Bolt", "Steel bolt", "000123", "1.50"); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	tests := []struct {
		name           string
		index          string
		expectedStatus int
	}{
		{name: "existing record", index: "0", expectedStatus: http.StatusOK},
		{name: "past the end", index: "1", expectedStatus: http.StatusNotFound},
		{name: "negative", index: "-1", expectedStatus: http.StatusNotFound},
		{name: "not a number", index: "first", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withIndexParam(httptest.NewRequest("GET", "/api/v1/products/"+tt.index, nil), tt.index)
			w := httptest.NewRecorder()

			server.handleGetProduct(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var got ProductResponse
			decodeResponse(t, w, &got)
			want := codec.Product{Name: "Bolt", Description: "Steel bolt", ID: "000123", Cost: 1.5}
			if got.Product != want {
				t.Errorf("Expected %v, got %v", want, got.Product)
			}
		})
	}
}

func TestServer_handleStats(t *testing.T) {
	server, cat := setupTestServer(t, ServerConfig{})

	if _, err := cat.AddRecord("Bolt", "Steel bolt", "000123", "1.50"); err != nil {
		t.Fatalf("AddRecord failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	server.handleStats(w, req)

	var stats catalog.Stats
	decodeResponse(t, w, &stats)
	if stats.Records != 1 || stats.SizeBytes != codec.RecordSize || stats.RecordSize != codec.RecordSize {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestServer_IOFailureIsInternalError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "products.dat")
	if err := os.WriteFile(filePath, nil, 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := catalog.Open(store.StoreConfig{FilePath: filePath, ReadOnly: true}, catalog.Options{})
	if err != nil {
		t.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	server := NewServer(cat, ServerConfig{}, nil)

	body := `{"name":"Bolt","description":"Steel bolt","id":"000123","cost":1.50}`
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	server.handleCreateProduct(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}

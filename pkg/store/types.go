package store

import (
	"github.com/rs/zerolog"
	"github.com/ssargent/prodfile/pkg/codec"
)

// StoreConfig holds configuration for a record store
type StoreConfig struct {
	FilePath    string          // Path to the product data file
	ReadOnly    bool            // Open without write access; the file must already exist
	SyncOnWrite bool            // Fsync after every append
	Logger      *zerolog.Logger // Optional; nil discards store logs
}

// ProductIterator provides streaming access to products
type ProductIterator interface {
	Next() bool
	Product() codec.Product
	Err() error
	Close() error
}

// Source is anything that can start a fresh in-order pass over its products
type Source interface {
	Iterator() ProductIterator
}

// Errors
var (
	ErrOutOfRange    = &StoreError{"record index out of range"}
	ErrStoreNotFound = &StoreError{"product data file not found"}
	ErrReadOnly      = &StoreError{"store is read-only"}
	ErrClosed        = &StoreError{"store is closed"}
	ErrIOFailure     = &StoreError{"i/o failure"}

	// ErrMalformedRecord is returned when fewer than a full record's bytes are available
	ErrMalformedRecord = codec.ErrMalformedRecord
)

// StoreError represents a record store error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// IOError wraps an underlying read, write, open or sync failure.
// It matches ErrIOFailure with errors.Is.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

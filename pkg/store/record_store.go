package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/ssargent/prodfile/pkg/codec"
)

// RecordStore owns a product data file and provides record-granularity
// access on top of the fixed-size codec. Record i lives at byte offset
// i*codec.RecordSize.
//
// A RecordStore must be the only writer of its file. Sharing one
// instance between goroutines is safe.
type RecordStore struct {
	file   *os.File
	codec  *codec.ProductCodec
	config StoreConfig
	logger zerolog.Logger
	mutex  sync.RWMutex
	count  int64 // whole records in the file
	size   int64 // file size in bytes, including any partial tail
	closed bool
}

// Open opens the product data file described by config. In read-write mode
// the file and its parent directories are created if absent.
func Open(config StoreConfig) (*RecordStore, error) {
	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = config.Logger.With().Str("component", "store").Logger()
	}

	flag := os.O_RDWR | os.O_CREATE
	if config.ReadOnly {
		flag = os.O_RDONLY
	} else if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, &IOError{Op: "mkdir", Path: filepath.Dir(config.FilePath), Err: err}
	}

	file, err := os.OpenFile(config.FilePath, flag, 0600)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrStoreNotFound, err)
		}
		return nil, &IOError{Op: "open", Path: config.FilePath, Err: err}
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, &IOError{Op: "stat", Path: config.FilePath, Err: err}
	}

	size := stat.Size()
	s := &RecordStore{
		file:   file,
		codec:  codec.NewProductCodec(),
		config: config,
		logger: logger,
		count:  size / codec.RecordSize,
		size:   size,
	}

	if tail := size % codec.RecordSize; tail != 0 {
		logger.Warn().
			Str("path", config.FilePath).
			Int64("trailing_bytes", tail).
			Msg("product file ends with a partial record")
	}
	logger.Debug().
		Str("path", config.FilePath).
		Int64("records", s.count).
		Bool("read_only", config.ReadOnly).
		Msg("opened record store")

	return s, nil
}

// Append writes p as a new record and returns its index. The record count
// only advances once the whole block has been written.
func (s *RecordStore) Append(p codec.Product) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	if s.config.ReadOnly {
		return 0, ErrReadOnly
	}

	data := s.codec.Encode(p)

	// Writing at count*RecordSize rather than at the raw end keeps records
	// aligned when the file carries a partial tail.
	offset := s.count * codec.RecordSize
	if _, err := s.file.WriteAt(data, offset); err != nil {
		return 0, &IOError{Op: "write", Path: s.config.FilePath, Err: err}
	}

	if s.config.SyncOnWrite {
		if err := s.file.Sync(); err != nil {
			return 0, &IOError{Op: "sync", Path: s.config.FilePath, Err: err}
		}
	}

	index := s.count
	s.count++
	if end := offset + codec.RecordSize; end > s.size {
		s.size = end
	}
	return index, nil
}

// ReadAt reads the record at index
func (s *RecordStore) ReadAt(index int64) (codec.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.closed {
		return codec.Product{}, ErrClosed
	}
	if index < 0 || index >= s.count {
		return codec.Product{}, fmt.Errorf("%w: index %d, record count %d", ErrOutOfRange, index, s.count)
	}

	buf := make([]byte, codec.RecordSize)
	n, err := s.file.ReadAt(buf, index*codec.RecordSize)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return codec.Product{}, fmt.Errorf("%w: record %d: read %d of %d bytes",
				ErrMalformedRecord, index, n, codec.RecordSize)
		}
		return codec.Product{}, &IOError{Op: "read", Path: s.config.FilePath, Err: err}
	}

	return s.codec.Decode(buf)
}

// Scan returns a new scanner positioned before record 0. The scan covers
// the bytes present when Scan is called.
func (s *RecordStore) Scan() *Scanner {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.closed {
		return &Scanner{err: ErrClosed}
	}
	return newScanner(s.file, s.config.FilePath, s.size)
}

// Iterator returns a streaming iterator over all products
func (s *RecordStore) Iterator() ProductIterator {
	return s.Scan()
}

// ForEach calls fn for every record in storage order. It stops at the first
// error returned by fn or by the scan.
func (s *RecordStore) ForEach(fn func(index int64, p codec.Product) error) error {
	sc := s.Scan()
	defer sc.Close()

	for sc.Next() {
		if err := fn(sc.Index(), sc.Product()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Count returns the number of whole records in the store
func (s *RecordStore) Count() int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.count
}

// Size returns the size of the data file in bytes
func (s *RecordStore) Size() int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.size
}

// Path returns the file path
func (s *RecordStore) Path() string {
	return s.config.FilePath
}

// ReadOnly reports whether the store was opened without write access
func (s *RecordStore) ReadOnly() bool {
	return s.config.ReadOnly
}

// Sync forces a fsync to disk
func (s *RecordStore) Sync() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.config.ReadOnly {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return &IOError{Op: "sync", Path: s.config.FilePath, Err: err}
	}
	return nil
}

// Close syncs and closes the file. Closing twice is a no-op.
func (s *RecordStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if !s.config.ReadOnly {
		if err := s.file.Sync(); err != nil {
			_ = s.file.Close()
			return &IOError{Op: "sync", Path: s.config.FilePath, Err: err}
		}
	}
	if err := s.file.Close(); err != nil {
		return &IOError{Op: "close", Path: s.config.FilePath, Err: err}
	}

	s.logger.Debug().Str("path", s.config.FilePath).Int64("records", s.count).Msg("closed record store")
	return nil
}

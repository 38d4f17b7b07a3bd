package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ssargent/prodfile/pkg/codec"
)

const scanBufferRecords = 64

// Scanner provides sequential access to the records of a store, from
// index 0 upward. A partial trailing record stops the scan with
// ErrMalformedRecord instead of being skipped.
type Scanner struct {
	reader  *bufio.Reader
	codec   *codec.ProductCodec
	path    string
	buf     []byte
	next    int64
	index   int64
	product codec.Product
	err     error
	done    bool
}

func newScanner(file *os.File, path string, size int64) *Scanner {
	section := io.NewSectionReader(file, 0, size)
	return &Scanner{
		reader: bufio.NewReaderSize(section, codec.RecordSize*scanBufferRecords),
		codec:  codec.NewProductCodec(),
		path:   path,
		buf:    make([]byte, codec.RecordSize),
		index:  -1,
	}
}

// Next advances to the next record. It returns false at the end of the
// store or on error; check Err to tell them apart.
func (sc *Scanner) Next() bool {
	if sc.done || sc.err != nil {
		return false
	}

	n, err := io.ReadFull(sc.reader, sc.buf)
	switch {
	case err == io.EOF:
		sc.done = true
		return false
	case errors.Is(err, io.ErrUnexpectedEOF):
		sc.err = fmt.Errorf("%w: record %d: %d trailing bytes", ErrMalformedRecord, sc.next, n)
		return false
	case err != nil:
		sc.err = &IOError{Op: "read", Path: sc.path, Err: err}
		return false
	}

	p, err := sc.codec.Decode(sc.buf)
	if err != nil {
		sc.err = fmt.Errorf("record %d: %w", sc.next, err)
		return false
	}

	sc.product = p
	sc.index = sc.next
	sc.next++
	return true
}

// Product returns the record read by the last successful Next
func (sc *Scanner) Product() codec.Product {
	return sc.product
}

// Index returns the index of the record read by the last successful Next,
// or -1 before the first one
func (sc *Scanner) Index() int64 {
	return sc.index
}

// Err returns the error that stopped the scan, if any
func (sc *Scanner) Err() error {
	return sc.err
}

// Close releases the scanner. The underlying file is owned by the store.
func (sc *Scanner) Close() error {
	sc.done = true
	return nil
}

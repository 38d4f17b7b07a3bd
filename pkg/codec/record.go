package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

// ErrMalformedRecord is returned when a buffer cannot hold a full record
var ErrMalformedRecord = errors.New("malformed record")

const (
	padUnit  = 0x0020  // space
	surrSelf = 0x10000 // first rune that needs a surrogate pair
)

// ProductCodec handles serialization and deserialization of product records
type ProductCodec struct{}

// NewProductCodec creates a new product codec instance
func NewProductCodec() *ProductCodec {
	return &ProductCodec{}
}

// Encode serializes a product into a fixed-size record
// Format: [Name(70)][Description(150)][ID(12)][Cost(8)], big-endian
func (c *ProductCodec) Encode(p Product) []byte {
	buf := make([]byte, RecordSize)
	putRecord(buf, p)
	return buf
}

// EncodeTo serializes a product into dst, which must hold at least RecordSize bytes
func (c *ProductCodec) EncodeTo(dst []byte, p Product) error {
	if len(dst) < RecordSize {
		return fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrMalformedRecord, len(dst), RecordSize)
	}
	putRecord(dst[:RecordSize], p)
	return nil
}

// Decode deserializes a fixed-size record into a Product.
// Bytes past RecordSize are ignored.
func (c *ProductCodec) Decode(data []byte) (Product, error) {
	if len(data) < RecordSize {
		return Product{}, fmt.Errorf("%w: %d bytes available, need %d", ErrMalformedRecord, len(data), RecordSize)
	}

	return Product{
		Name:        getField(data[NameOffset:DescriptionOffset], NameSize),
		Description: getField(data[DescriptionOffset:IDOffset], DescriptionSize),
		ID:          getField(data[IDOffset:CostOffset], IDSize),
		Cost:        math.Float64frombits(binary.BigEndian.Uint64(data[CostOffset:RecordSize])),
	}, nil
}

func putRecord(buf []byte, p Product) {
	putField(buf[NameOffset:DescriptionOffset], p.Name, NameSize)
	putField(buf[DescriptionOffset:IDOffset], p.Description, DescriptionSize)
	putField(buf[IDOffset:CostOffset], p.ID, IDSize)
	binary.BigEndian.PutUint64(buf[CostOffset:RecordSize], math.Float64bits(p.Cost))
}

// putField writes s as width big-endian UTF-16 code units, truncating or
// space-padding as needed. A surrogate pair that would straddle the width
// is dropped whole.
func putField(dst []byte, s string, width int) {
	n := 0
	for _, r := range s {
		if r >= surrSelf {
			if n+2 > width {
				break
			}
			r1, r2 := utf16.EncodeRune(r)
			binary.BigEndian.PutUint16(dst[n*CharWidth:], uint16(r1))
			binary.BigEndian.PutUint16(dst[(n+1)*CharWidth:], uint16(r2))
			n += 2
			continue
		}
		if n+1 > width {
			break
		}
		binary.BigEndian.PutUint16(dst[n*CharWidth:], uint16(r))
		n++
	}
	for ; n < width; n++ {
		binary.BigEndian.PutUint16(dst[n*CharWidth:], padUnit)
	}
}

func getField(src []byte, width int) string {
	units := make([]uint16, width)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(src[i*CharWidth:])
	}
	return strings.TrimRight(string(utf16.Decode(units)), " ")
}

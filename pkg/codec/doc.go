// Package codec provides product record serialization and deserialization for prodfile.
//
// Every product is stored as a fixed-size binary block so that the N-th record of a
// file can be located with a single multiplication, without any index.
//
// # Record Format
//
// Records are exactly RecordSize (240) bytes, big-endian, with no header or padding
// between records:
//
//	[Name(70)][Description(150)][ID(12)][Cost(8)]
//
// Fields:
//   - Name: 35 UTF-16 code units, space-padded
//   - Description: 75 UTF-16 code units, space-padded
//   - ID: 6 UTF-16 code units, space-padded
//   - Cost: IEEE-754 double
//
// # Padding and Truncation
//
// Text longer than its field is silently truncated on encode; shorter text is
// right-padded with spaces. Decode strips trailing spaces, so a value that has no
// trailing spaces and fits its field survives a round trip unchanged. Length limits
// are a caller concern and are not enforced here.
//
// # Usage
//
//	c := codec.NewProductCodec()
//
//	block := c.Encode(codec.Product{Name: "Bolt", ID: "000123", Cost: 1.5})
//
//	p, err := c.Decode(block)
//	if err != nil {
//	    return err // codec.ErrMalformedRecord
//	}
//
// # Thread Safety
//
// ProductCodec carries no state and is safe for concurrent use.
package codec

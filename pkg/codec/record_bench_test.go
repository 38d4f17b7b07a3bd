//go:build bench
// +build bench

package codec

import (
	"strings"
	"testing"
)

func BenchmarkProductCodec_Encode(b *testing.B) {
	codec := NewProductCodec()

	benchmarks := []struct {
		name    string
		product Product
	}{
		{
			name:    "short",
			product: Product{Name: "Bolt", ID: "000123", Cost: 1.5},
		},
		{
			name: "full width",
			product: Product{
				Name:        strings.Repeat("n", NameSize),
				Description: strings.Repeat("d", DescriptionSize),
				ID:          "123456",
				Cost:        25,
			},
		},
		{
			name: "truncated",
			product: Product{
				Name:        strings.Repeat("n", 500),
				Description: strings.Repeat("d", 500),
				ID:          strings.Repeat("9", 50),
			},
		},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = codec.Encode(bm.product)
			}
		})
	}
}

func BenchmarkProductCodec_EncodeTo(b *testing.B) {
	codec := NewProductCodec()
	p := Product{Name: "Bolt Cutter", Description: "Tool", ID: "000124", Cost: 25}
	buf := make([]byte, RecordSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := codec.EncodeTo(buf, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProductCodec_Decode(b *testing.B) {
	codec := NewProductCodec()
	encoded := codec.Encode(Product{Name: "Bolt Cutter", Description: "Tool", ID: "000124", Cost: 25})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}

package codec

import (
	"strconv"
	"strings"
)

// Field widths, measured in UTF-16 code units
const (
	NameSize        = 35
	DescriptionSize = 75
	IDSize          = 6
)

// Byte layout of a single record
const (
	CharWidth  = 2 // bytes per code unit
	CostSize   = 8 // IEEE-754 double
	RecordSize = (NameSize+DescriptionSize+IDSize)*CharWidth + CostSize // 240 bytes

	NameOffset        = 0
	DescriptionOffset = NameOffset + NameSize*CharWidth               // 70
	IDOffset          = DescriptionOffset + DescriptionSize*CharWidth // 220
	CostOffset        = IDOffset + IDSize*CharWidth                   // 232
)

// Product is the logical record stored in a product file
type Product struct {
	Name        string  `json:"name" xml:"name"`
	Description string  `json:"description" xml:"description"`
	ID          string  `json:"id" xml:"ID"`
	Cost        float64 `json:"cost" xml:"cost"`
}

// String renders the product in a single-line debug form
func (p Product) String() string {
	var b strings.Builder
	b.WriteString("Product{name='")
	b.WriteString(p.Name)
	b.WriteString("', description='")
	b.WriteString(p.Description)
	b.WriteString("', ID='")
	b.WriteString(p.ID)
	b.WriteString("', cost=")
	b.WriteString(strconv.FormatFloat(p.Cost, 'f', -1, 64))
	b.WriteString("}")
	return b.String()
}

// CodeUnits returns the length of s in UTF-16 code units, which is the unit
// the fixed field widths are expressed in.
func CodeUnits(s string) int {
	n := 0
	for _, r := range s {
		if r >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	return n
}

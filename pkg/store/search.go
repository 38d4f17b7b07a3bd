package store

import (
	"fmt"
	"strings"

	"github.com/ssargent/prodfile/pkg/codec"
	"golang.org/x/text/cases"
)

// NameMatcher matches products whose name contains a term, ignoring case
type NameMatcher struct {
	caser cases.Caser
	term  string
}

// NewNameMatcher creates a matcher for term. An empty term matches every product.
func NewNameMatcher(term string) *NameMatcher {
	caser := cases.Fold()
	return &NameMatcher{
		caser: caser,
		term:  caser.String(term),
	}
}

// Match reports whether the folded name of p contains the folded term
func (m *NameMatcher) Match(p codec.Product) bool {
	return strings.Contains(m.caser.String(p.Name), m.term)
}

// Search scans src in storage order and returns the products whose name
// contains term, compared case-insensitively. A scan failure aborts the
// search.
func Search(src Source, term string) ([]codec.Product, error) {
	matcher := NewNameMatcher(term)

	it := src.Iterator()
	defer it.Close()

	var matches []codec.Product
	for it.Next() {
		if p := it.Product(); matcher.Match(p) {
			matches = append(matches, p)
		}
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}

	return matches, nil
}

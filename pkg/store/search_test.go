package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ssargent/prodfile/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []codec.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestSearch_CaseInsensitive(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Append(codec.Product{Name: "Widget", ID: "000001", Cost: 2})
	require.NoError(t, err)

	testCases := []struct {
		term string
		want []string
	}{
		{term: "wid", want: []string{"Widget"}},
		{term: "WID", want: []string{"Widget"}},
		{term: "gEt", want: []string{"Widget"}},
		{term: "Widget", want: []string{"Widget"}},
		{term: "gadget", want: []string{}},
		{term: "widgets", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			got, err := Search(s, tc.term)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	s, _ := openTestStore(t)

	bolt := codec.Product{Name: "Bolt", Description: "Steel bolt", ID: "000123", Cost: 1.50}
	cutter := codec.Product{Name: "Bolt Cutter", Description: "Tool", ID: "000124", Cost: 25.0}

	_, err := s.Append(bolt)
	require.NoError(t, err)
	_, err = s.Append(cutter)
	require.NoError(t, err)

	got, err := Search(s, "bolt")
	require.NoError(t, err)
	assert.Equal(t, []codec.Product{bolt, cutter}, got)

	got, err = Search(s, "cutter")
	require.NoError(t, err)
	assert.Equal(t, []codec.Product{cutter}, got)
}

func TestSearch_MatchesOnlyName(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Append(codec.Product{Name: "Hammer", Description: "claw bolt remover", ID: "bolt01"})
	require.NoError(t, err)

	got, err := Search(s, "bolt")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_IgnoresPadding(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Append(codec.Product{Name: "Nut"})
	require.NoError(t, err)

	// The padded on-disk name ends in spaces; the decoded one does not
	got, err := Search(s, "nut ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_UnicodeFolding(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Append(codec.Product{Name: "Schraube"})
	require.NoError(t, err)
	_, err = s.Append(codec.Product{Name: "ÉCROU"})
	require.NoError(t, err)

	got, err := Search(s, "écrou")
	require.NoError(t, err)
	assert.Equal(t, []string{"ÉCROU"}, names(got))
}

func TestSearch_ScanFailureAborts(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "products.dat")
	c := codec.NewProductCodec()

	data := append(c.Encode(codec.Product{Name: "Bolt"}), 0x00, 0x42)
	require.NoError(t, os.WriteFile(filePath, data, 0600))

	s, err := Open(StoreConfig{FilePath: filePath, ReadOnly: true})
	require.NoError(t, err)
	defer s.Close()

	got, err := Search(s, "bolt")
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
}

func TestNameMatcher_EmptyTermMatchesAll(t *testing.T) {
	m := NewNameMatcher("")
	assert.True(t, m.Match(codec.Product{Name: "anything"}))
	assert.True(t, m.Match(codec.Product{}))
}

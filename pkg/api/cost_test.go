package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body    string
		want    CostText
		wantErr bool
	}{
		{body: `{"cost":1.50}`, want: "1.50"},
		{body: `{"cost":"25.0"}`, want: "25.0"},
		{body: `{"cost":"abc"}`, want: "abc"},
		{body: `{"cost":null}`, want: ""},
		{body: `{}`, want: ""},
		{body: `{"cost":-3e2}`, want: "-3e2"},
		{body: `{"cost":true}`, wantErr: true},
		{body: `{"cost":[1]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req CreateProductRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Cost)
		})
	}
}

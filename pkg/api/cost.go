package api

import (
	"bytes"
	"encoding/json"
)

// CostText keeps the cost exactly as the client sent it so that the
// catalog applies the same parsing rules as the CLI
type CostText string

// UnmarshalJSON accepts a JSON string, a JSON number or null
func (c *CostText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CostText(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*c = CostText(n.String())
	}
	return nil
}

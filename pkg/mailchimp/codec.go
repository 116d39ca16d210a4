package mailchimp

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Codec converts between Go values and the wire format.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	// Normalize converts an arbitrary Go value into its generic decoded form
	// (maps, slices, strings, numbers, booleans and nil).
	Normalize(v any) (any, error)
}

// JSONCodec is the default Codec. Numbers decode as json.Number so large ids
// and prices keep their precision.
type JSONCodec struct {
	api jsoniter.API
}

var _ Codec = (*JSONCodec)(nil)

// NewJSONCodec returns a JSON codec with sorted map keys, which keeps
// encoded request bodies stable.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{
		api: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			UseNumber:              true,
		}.Froze(),
	}
}

func (c *JSONCodec) Encode(v any) ([]byte, error) {
	data, err := c.api.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode: %w", err)
	}
	return data, nil
}

func (c *JSONCodec) Decode(data []byte, v any) error {
	if err := c.api.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	return nil
}

func (c *JSONCodec) Normalize(v any) (any, error) {
	var data []byte
	switch raw := v.(type) {
	case json.RawMessage:
		data = raw
	case []byte:
		data = raw
	default:
		encoded, err := c.Encode(v)
		if err != nil {
			return nil, err
		}
		data = encoded
	}
	var out any
	if err := c.Decode(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

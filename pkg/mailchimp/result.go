package mailchimp

import "github.com/tidwall/gjson"

// Result is the success payload of an invocation.
type Result struct {
	raw   []byte
	value any
	codec Codec
}

// Raw returns the response body as received.
func (r *Result) Raw() []byte {
	return r.raw
}

// Value returns the generically decoded payload. Numbers are json.Number.
func (r *Result) Value() any {
	return r.value
}

// Decode unmarshals the payload into v, typically one of the model types.
func (r *Result) Decode(v any) error {
	return r.codec.Decode(r.raw, v)
}

// Get returns the value at a gjson path, e.g. "data.#" or "data.0.id".
func (r *Result) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

func (r *Result) String() string {
	return string(r.raw)
}

package mailchimp

import (
	"net/http"
	"strings"
	"unicode"
)

// Descriptor binds a (group, name) pair to its wire route and shapes.
//
// Descriptors are immutable once registered.
type Descriptor struct {
	Group  string
	Name   string
	Doc    string
	Method string
	Path   string
	Params *Shape
	Result *Shape
}

// Key returns the registry key "group/name".
func (d *Descriptor) Key() string {
	return operationKey(d.Group, d.Name)
}

// Clone returns a deep copy of d.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	c := *d
	c.Params = d.Params.Clone()
	c.Result = d.Result.Clone()
	return &c
}

// withDefaults fills in the Mailchimp v2.0 route and an open params object.
func (d *Descriptor) withDefaults() *Descriptor {
	c := d.Clone()
	if c.Method == "" {
		c.Method = http.MethodPost
	}
	if c.Path == "" {
		c.Path = DefaultPath(c.Group, c.Name)
	}
	if c.Params == nil {
		c.Params = Object(nil)
	}
	return c
}

func operationKey(group, name string) string {
	return group + "/" + name
}

// DefaultPath returns the v2.0 route for an operation, e.g.
// "/lists/batch-subscribe.json" for ("lists", "batchSubscribe").
func DefaultPath(group, name string) string {
	return "/" + kebab(group) + "/" + kebab(name) + ".json"
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

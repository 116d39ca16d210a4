package mailchimp

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Kind is the primitive kind of a shape.
type Kind string

const (
	KindAny     Kind = "any"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
)

func (k Kind) valid() bool {
	switch k {
	case KindAny, KindString, KindNumber, KindBoolean, KindObject, KindArray:
		return true
	}
	return false
}

// Shape describes the structure of an operation's params or result.
//
// Shapes are advisory: fields that a shape does not declare are passed
// through untouched, and a shape of kind any is never inspected.
type Shape struct {
	Kind     Kind
	Required bool
	Fields   map[string]*Shape
	Items    *Shape

	// Ref names a shape from the catalogue's shapes section. It is cleared
	// once the catalogue is resolved.
	Ref string
}

// Object returns an object shape with the given fields.
func Object(fields map[string]*Shape) *Shape {
	return &Shape{Kind: KindObject, Fields: fields}
}

// ArrayOf returns an array shape whose elements match items.
func ArrayOf(items *Shape) *Shape {
	return &Shape{Kind: KindArray, Items: items}
}

// Of returns a shape of a primitive kind.
func Of(kind Kind) *Shape {
	return &Shape{Kind: kind}
}

// Req returns a copy of s marked as required.
func Req(s *Shape) *Shape {
	c := s.Clone()
	c.Required = true
	return c
}

// FieldNames returns the declared field names in sorted order.
func (s *Shape) FieldNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of s.
func (s *Shape) Clone() *Shape {
	if s == nil {
		return nil
	}
	c := &Shape{Kind: s.Kind, Required: s.Required, Ref: s.Ref, Items: s.Items.Clone()}
	if s.Fields != nil {
		c.Fields = make(map[string]*Shape, len(s.Fields))
		for name, f := range s.Fields {
			c.Fields[name] = f.Clone()
		}
	}
	return c
}

// String renders the shape in the compact catalogue notation.
func (s *Shape) String() string {
	if s == nil {
		return "any"
	}
	var b strings.Builder
	s.write(&b)
	if s.Required {
		b.WriteByte('!')
	}
	return b.String()
}

func (s *Shape) write(b *strings.Builder) {
	switch {
	case s.Ref != "":
		b.WriteString("@" + s.Ref)
	case s.Kind == KindArray:
		b.WriteString("[]")
		if s.Items == nil {
			b.WriteString(string(KindAny))
			return
		}
		s.Items.write(b)
	case s.Kind == KindObject && len(s.Fields) > 0:
		b.WriteByte('{')
		for i, name := range s.FieldNames() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(name + ": " + s.Fields[name].String())
		}
		b.WriteByte('}')
	default:
		b.WriteString(string(s.Kind))
	}
}

// UnmarshalYAML accepts either the compact scalar form ("string!",
// "[]@EmailIdentifier") or a mapping with kind, required, fields, items and
// ref keys.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseShape(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = *parsed
		return nil
	case yaml.MappingNode:
		var aux struct {
			Kind     Kind              `yaml:"kind"`
			Required bool              `yaml:"required"`
			Fields   map[string]*Shape `yaml:"fields"`
			Items    *Shape            `yaml:"items"`
			Ref      string            `yaml:"ref"`
		}
		if err := node.Decode(&aux); err != nil {
			return err
		}
		kind := aux.Kind
		if kind == "" {
			switch {
			case aux.Fields != nil:
				kind = KindObject
			case aux.Items != nil:
				kind = KindArray
			case aux.Ref == "":
				kind = KindAny
			}
		}
		if kind != "" && !kind.valid() {
			return fmt.Errorf("line %d: unknown shape kind %q", node.Line, kind)
		}
		*s = Shape{Kind: kind, Required: aux.Required, Fields: aux.Fields, Items: aux.Items, Ref: aux.Ref}
		return nil
	default:
		return fmt.Errorf("line %d: shape must be a scalar or a mapping", node.Line)
	}
}

// ParseShape parses the compact shape notation: an optional run of "[]"
// prefixes, then a kind or an "@Name" reference, then an optional "!" marking
// the outermost shape as required.
func ParseShape(expr string) (*Shape, error) {
	text := strings.TrimSpace(expr)
	required := strings.HasSuffix(text, "!")
	text = strings.TrimSuffix(text, "!")

	depth := 0
	for strings.HasPrefix(text, "[]") {
		depth++
		text = text[2:]
	}

	var base *Shape
	switch {
	case strings.HasPrefix(text, "@"):
		if len(text) == 1 {
			return nil, fmt.Errorf("empty shape reference in %q", expr)
		}
		base = &Shape{Ref: text[1:]}
	case Kind(text).valid() && Kind(text) != KindArray:
		base = &Shape{Kind: Kind(text)}
	default:
		return nil, fmt.Errorf("invalid shape %q", expr)
	}

	for range depth {
		base = ArrayOf(base)
	}
	base.Required = required
	return base, nil
}

// resolve replaces every reference in s with a copy of the named shape. The
// referencing field keeps its own required marker.
func (s *Shape) resolve(named map[string]*Shape, stack []string) (*Shape, error) {
	if s == nil {
		return nil, nil
	}
	if s.Ref != "" {
		for _, seen := range stack {
			if seen == s.Ref {
				return nil, fmt.Errorf("shape %q references itself", s.Ref)
			}
		}
		target, ok := named[s.Ref]
		if !ok {
			return nil, fmt.Errorf("unknown shape %q", s.Ref)
		}
		out, err := target.resolve(named, append(stack, s.Ref))
		if err != nil {
			return nil, err
		}
		out.Required = s.Required
		return out, nil
	}

	out := &Shape{Kind: s.Kind, Required: s.Required}
	if out.Kind == "" {
		out.Kind = KindAny
	}
	if s.Items != nil {
		items, err := s.Items.resolve(named, stack)
		if err != nil {
			return nil, err
		}
		out.Items = items
	}
	if s.Fields != nil {
		out.Fields = make(map[string]*Shape, len(s.Fields))
		for name, f := range s.Fields {
			if f == nil {
				f = Of(KindAny)
			}
			rf, err := f.resolve(named, stack)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out.Fields[name] = rf
		}
	}
	return out, nil
}

// Validate checks value against the shape. Paths in the returned list are
// relative to the value, e.g. "email.email" or "batch[2].email".
func (s *Shape) Validate(value any) field.ErrorList {
	return s.validate(value, nil)
}

func (s *Shape) validate(value any, path *field.Path) field.ErrorList {
	if s == nil || s.Kind == KindAny || s.Kind == "" {
		return nil
	}
	if got := kindOf(value); got != s.Kind {
		return field.ErrorList{field.TypeInvalid(pathOrRoot(path), string(got), "must be "+string(s.Kind))}
	}

	var errs field.ErrorList
	switch s.Kind {
	case KindObject:
		obj := value.(map[string]any)
		for _, name := range s.FieldNames() {
			f := s.Fields[name]
			v, ok := obj[name]
			if !ok || v == nil {
				if f.Required {
					errs = append(errs, field.Required(path.Child(name), ""))
				}
				continue
			}
			errs = append(errs, f.validate(v, path.Child(name))...)
		}
	case KindArray:
		if s.Items == nil {
			return nil
		}
		for i, v := range value.([]any) {
			if v == nil {
				continue
			}
			errs = append(errs, s.Items.validate(v, path.Index(i))...)
		}
	}
	return errs
}

func pathOrRoot(p *field.Path) *field.Path {
	if p == nil {
		return field.NewPath("<root>")
	}
	return p
}

type number interface {
	Float64() (float64, error)
}

// kindOf reports the kind of a decoded JSON value. Values decoded with
// UseNumber report number for json.Number.
func kindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return KindString
	case bool:
		return KindBoolean
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, number:
		return KindNumber
	}
	return KindAny
}

package mailchimp

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
)

//go:generate go run ../../cmd/gen-facades -catalog catalog.yaml -out zz_generated.facades.go

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the declarative operation table loaded from catalog.yaml.
type Catalog struct {
	Shapes map[string]*Shape `yaml:"shapes"`
	Groups []CatalogGroup    `yaml:"groups"`
}

// CatalogGroup is one resource group of the catalogue.
type CatalogGroup struct {
	Name       string             `yaml:"name"`
	Doc        string             `yaml:"doc"`
	Operations []CatalogOperation `yaml:"operations"`
}

// CatalogOperation is one operation entry of the catalogue.
type CatalogOperation struct {
	Name   string `yaml:"name"`
	Doc    string `yaml:"doc"`
	Method string `yaml:"method,omitempty"`
	Path   string `yaml:"path,omitempty"`
	Params *Shape `yaml:"params"`
	Result *Shape `yaml:"result"`
}

// EmbeddedCatalog returns the raw catalogue compiled into the package.
func EmbeddedCatalog() []byte {
	out := make([]byte, len(catalogYAML))
	copy(out, catalogYAML)
	return out
}

// ParseCatalog decodes a catalogue and resolves every shape reference.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for gi := range c.Groups {
		g := &c.Groups[gi]
		if g.Name == "" {
			return nil, fmt.Errorf("catalog group %d has no name", gi)
		}
		for oi := range g.Operations {
			op := &g.Operations[oi]
			if op.Name == "" {
				return nil, fmt.Errorf("catalog group %s: operation %d has no name", g.Name, oi)
			}
			params, err := op.Params.resolve(c.Shapes, nil)
			if err != nil {
				return nil, fmt.Errorf("%s/%s params: %w", g.Name, op.Name, err)
			}
			result, err := op.Result.resolve(c.Shapes, nil)
			if err != nil {
				return nil, fmt.Errorf("%s/%s result: %w", g.Name, op.Name, err)
			}
			op.Params, op.Result = params, result
		}
	}
	return &c, nil
}

// Descriptors returns one descriptor per catalogue operation, in catalogue
// order.
func (c *Catalog) Descriptors() []*Descriptor {
	var out []*Descriptor
	for _, g := range c.Groups {
		for _, op := range g.Operations {
			out = append(out, &Descriptor{
				Group:  g.Name,
				Name:   op.Name,
				Doc:    op.Doc,
				Method: op.Method,
				Path:   op.Path,
				Params: op.Params,
				Result: op.Result,
			})
		}
	}
	return out
}

// Registry builds a sealed registry holding every catalogue group and
// operation.
func (c *Catalog) Registry() (*Registry, error) {
	r := newOpenRegistry()
	for _, g := range c.Groups {
		if err := r.RegisterGroup(g.Name, g.Doc); err != nil {
			return nil, err
		}
	}
	for _, d := range c.Descriptors() {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	r.Seal()
	return r, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		return nil, err
	}
	return c.Registry()
})

// DefaultRegistry returns the sealed registry built from the embedded
// catalogue. It panics if the catalogue is invalid or declares an operation
// twice.
func DefaultRegistry() *Registry {
	r, err := defaultRegistry()
	utilruntime.Must(err)
	return r
}

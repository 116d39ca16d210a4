package mailchimp

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// Registry maps (group, name) pairs to operation descriptors.
//
// A registry is populated once at startup and then sealed. Lookups on a
// sealed registry take no lock.
type Registry struct {
	mu     sync.Mutex
	sealed atomic.Bool
	ops    map[string]*Descriptor
	groups map[string]string
}

// NewRegistry registers every descriptor and seals the registry.
func NewRegistry(descs ...*Descriptor) (*Registry, error) {
	r := &Registry{
		ops:    make(map[string]*Descriptor, len(descs)),
		groups: make(map[string]string),
	}
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	r.Seal()
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on a conflicting
// registration.
func MustNewRegistry(descs ...*Descriptor) *Registry {
	r, err := NewRegistry(descs...)
	if err != nil {
		panic(err)
	}
	return r
}

// newOpenRegistry returns an empty registry that still accepts
// registrations.
func newOpenRegistry() *Registry {
	return &Registry{
		ops:    make(map[string]*Descriptor),
		groups: make(map[string]string),
	}
}

// RegisterGroup declares a resource group, which may have no operations.
func (r *Registry) RegisterGroup(name, doc string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed.Load() {
		return ErrRegistrySealed
	}
	if existing, ok := r.groups[name]; !ok || existing == "" {
		r.groups[name] = doc
	}
	return nil
}

// Register adds a descriptor. It fails with DuplicateOperation when the
// (group, name) pair is already present.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil || d.Group == "" || d.Name == "" {
		return fmt.Errorf("descriptor must have a group and a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed.Load() {
		return ErrRegistrySealed
	}
	key := d.Key()
	if _, ok := r.ops[key]; ok {
		return &Error{
			Kind:      DuplicateOperation,
			Group:     d.Group,
			Operation: d.Name,
			Message:   fmt.Sprintf("operation %s is already registered", key),
		}
	}
	r.ops[key] = d.withDefaults()
	if _, ok := r.groups[d.Group]; !ok {
		r.groups[d.Group] = ""
	}
	return nil
}

// Seal makes the registry read-only. Sealing twice is a no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed.Store(true)
}

// Sealed reports whether the registry is read-only.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Lookup returns the descriptor registered for (group, name). The returned
// descriptor must not be modified.
func (r *Registry) Lookup(group, name string) (*Descriptor, error) {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	d, ok := r.ops[operationKey(group, name)]
	if !ok {
		return nil, &Error{
			Kind:      UnknownOperation,
			Group:     group,
			Operation: name,
			Message:   fmt.Sprintf("operation %s is not registered", operationKey(group, name)),
		}
	}
	return d, nil
}

// Operations returns every descriptor ordered by group, then name.
func (r *Registry) Operations() []*Descriptor {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	out := make([]*Descriptor, 0, len(r.ops))
	for _, d := range r.ops {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Groups returns the sorted names of every declared resource group,
// including groups without operations.
func (r *Registry) Groups() []string {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	out := make([]string, 0, len(r.groups))
	for g := range r.groups {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// GroupDoc returns the description of a resource group.
func (r *Registry) GroupDoc(group string) string {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return r.groups[group]
}

// GroupOperations returns the descriptors of one group ordered by name.
func (r *Registry) GroupOperations(group string) []*Descriptor {
	var out []*Descriptor
	for _, d := range r.Operations() {
		if d.Group == group {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	if !r.sealed.Load() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return len(r.ops)
}

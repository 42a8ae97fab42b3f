package idl

import (
	"fmt"

	"github.com/google/uuid"
)

// Registry is an ordered, validated set of interfaces. Declaration order fixes
// the index used by generated tables and must only ever be appended to.
type Registry struct {
	list   []*Interface
	byName map[string]*Interface
	byID   map[uuid.UUID]*Interface
	index  map[*Interface]int
}

// NewRegistry validates the interfaces and indexes them in the given order.
func NewRegistry(ifaces ...*Interface) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*Interface, len(ifaces)),
		byID:   make(map[uuid.UUID]*Interface, len(ifaces)),
		index:  make(map[*Interface]int, len(ifaces)),
	}
	var root *Interface
	for n, iface := range ifaces {
		if _, dup := r.byName[iface.Name]; dup {
			return nil, fmt.Errorf("interface %s declared twice", iface.Name)
		}
		if other, dup := r.byID[iface.ID]; dup {
			return nil, fmt.Errorf("interface %s reuses the id of %s", iface.Name, other.Name)
		}
		if iface.Parent == nil {
			if root != nil {
				return nil, fmt.Errorf("interface %s is a second root besides %s", iface.Name, root.Name)
			}
			if len(iface.Methods) != 3 {
				return nil, fmt.Errorf("root interface %s must declare exactly 3 methods, has %d", iface.Name, len(iface.Methods))
			}
			root = iface
		} else if _, ok := r.index[iface.Parent]; !ok {
			return nil, fmt.Errorf("interface %s inherits from undeclared %s", iface.Name, iface.Parent.Name)
		}
		for _, m := range iface.Methods {
			for _, arg := range m.Args {
				base := arg.Type.Base()
				if !looksLikeInterface(base) {
					continue
				}
				if _, ok := r.byName[base]; !ok && base != iface.Name {
					return nil, fmt.Errorf("%s.%s: argument %s references undeclared interface %s", iface.Name, m.Name, arg.Name, base)
				}
			}
		}
		r.list = append(r.list, iface)
		r.byName[iface.Name] = iface
		r.byID[iface.ID] = iface
		r.index[iface] = n
	}
	if root == nil {
		return nil, fmt.Errorf("no root interface")
	}
	return r, nil
}

// MustRegistry is NewRegistry for static declarations.
func MustRegistry(ifaces ...*Interface) *Registry {
	r, err := NewRegistry(ifaces...)
	if err != nil {
		panic("idl: " + err.Error())
	}
	return r
}

// looksLikeInterface matches the COM naming convention: a capital I followed by
// another capital letter.
func looksLikeInterface(name string) bool {
	return len(name) > 2 && name[0] == 'I' && name[1] >= 'A' && name[1] <= 'Z'
}

// All returns the interfaces in declaration order.
func (r *Registry) All() []*Interface {
	out := make([]*Interface, len(r.list))
	copy(out, r.list)
	return out
}

// Len returns the number of interfaces.
func (r *Registry) Len() int {
	return len(r.list)
}

// ByName looks up an interface by name.
func (r *Registry) ByName(name string) (*Interface, bool) {
	i, ok := r.byName[name]
	return i, ok
}

// ByID looks up an interface by its identifier.
func (r *Registry) ByID(id uuid.UUID) (*Interface, bool) {
	i, ok := r.byID[id]
	return i, ok
}

// IndexOf returns the declaration index, or -1 for foreign interfaces.
func (r *Registry) IndexOf(i *Interface) int {
	n, ok := r.index[i]
	if !ok {
		return -1
	}
	return n
}

// IsInterfaceType reports whether a type's base names a registered interface.
func (r *Registry) IsInterfaceType(t TypeDecl) bool {
	_, ok := r.byName[t.Base()]
	return ok
}

package layout

import (
	"errors"
	"slices"
)

var ErrLayoutUnavailable = errors.New("no layout available")

// Registry maps layout kinds to layouts. The zero value has no layouts.
type Registry struct {
	layouts map[Kind]*Layout
}

func NewRegistry(layouts ...*Layout) *Registry {
	r := &Registry{layouts: make(map[Kind]*Layout, len(layouts))}
	for _, l := range layouts {
		if l != nil && l.Kind.Valid() {
			r.layouts[l.Kind] = l
		}
	}
	return r
}

// DefaultRegistry holds every builtin layout.
func DefaultRegistry() *Registry {
	return NewRegistry(Builtin()...)
}

type Resolution struct {
	Layout   *Layout
	Fallback bool
}

// Resolve returns the layout registered for slug. Unknown or empty slugs, and
// known slugs without a registered layout, resolve to the DefaultKind layout
// with Fallback set. ErrLayoutUnavailable means not even the default exists.
func (r *Registry) Resolve(slug string) (Resolution, error) {
	if r == nil {
		return Resolution{}, ErrLayoutUnavailable
	}

	if k, ok := ParseKind(slug); ok {
		if l, ok := r.layouts[k]; ok {
			return Resolution{Layout: l}, nil
		}
	}

	if l, ok := r.layouts[DefaultKind]; ok {
		return Resolution{Layout: l, Fallback: true}, nil
	}

	return Resolution{}, ErrLayoutUnavailable
}

// Kinds lists the registered kinds in declaration order.
func (r *Registry) Kinds() []Kind {
	if r == nil {
		return nil
	}

	kinds := make([]Kind, 0, len(r.layouts))
	for k := range r.layouts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	return kinds
}

func (r *Registry) Layouts() []*Layout {
	kinds := r.Kinds()
	layouts := make([]*Layout, 0, len(kinds))
	for _, k := range kinds {
		layouts = append(layouts, r.layouts[k])
	}
	return layouts
}

// Package category maps wishlist purpose categories between their numeric id,
// display label and URL route token.
//
// The id→label and id→route tables are the only hand-written data. The reverse
// route index and the id list are derived from them when a Registry is built, so
// the three representations cannot drift apart.
package category

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultID is the fallback category used for absent or unknown ids.
const DefaultID = 0

// ErrInvalidRegistry is returned by New when the definition tables disagree.
var ErrInvalidRegistry = errors.New("invalid category registry")

// Category is one purpose classification with all three representations.
type Category struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Route string `json:"route" yaml:"route"`
}

// Registry is an immutable set of categories. The zero value is not usable;
// build one with New.
type Registry struct {
	// ordered by id
	categories []Category
	byID       map[int]int
	byRoute    map[string]int
}

// New builds a registry from the primitive id→label and id→route tables.
func New(labels map[int]string, routes map[int]string) (*Registry, error) {
	if len(labels) != len(routes) {
		return nil, fmt.Errorf("%w: %d labels but %d routes", ErrInvalidRegistry, len(labels), len(routes))
	}

	ids := make([]int, 0, len(labels))
	for id := range labels {
		if id < 0 {
			return nil, fmt.Errorf("%w: negative id %d", ErrInvalidRegistry, id)
		}
		if _, ok := routes[id]; !ok {
			return nil, fmt.Errorf("%w: id %d has a label but no route", ErrInvalidRegistry, id)
		}
		ids = append(ids, id)
	}
	if _, ok := labels[DefaultID]; !ok {
		return nil, fmt.Errorf("%w: default id %d is missing", ErrInvalidRegistry, DefaultID)
	}
	sort.Ints(ids)

	r := &Registry{
		categories: make([]Category, 0, len(ids)),
		byID:       make(map[int]int, len(ids)),
		byRoute:    make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		route := routes[id]
		if !isRouteToken(route) {
			return nil, fmt.Errorf("%w: id %d has malformed route %q", ErrInvalidRegistry, id, route)
		}
		if other, dup := r.byRoute[route]; dup {
			return nil, fmt.Errorf("%w: route %q used by ids %d and %d", ErrInvalidRegistry, route, r.categories[other].ID, id)
		}
		r.categories = append(r.categories, Category{ID: id, Label: labels[id], Route: route})
		r.byID[id] = i
		r.byRoute[route] = i
	}

	return r, nil
}

// MustNew is like New but panics on error. Only use it with compiled-in tables.
func MustNew(labels map[int]string, routes map[int]string) *Registry {
	r, err := New(labels, routes)
	if err != nil {
		panic(err)
	}
	return r
}

// isRouteToken reports whether s is a non-empty lowercase ASCII word.
func isRouteToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func (r *Registry) resolve(id int) Category {
	if i, ok := r.byID[id]; ok {
		return r.categories[i]
	}
	return r.categories[r.byID[DefaultID]]
}

// TextFor returns the display label for id. A nil or unknown id resolves to the
// default category's label.
func (r *Registry) TextFor(id *int) string {
	if id == nil {
		return r.Label(DefaultID)
	}
	return r.Label(*id)
}

// RouteFor returns the route token for id, with the same fallback as TextFor.
func (r *Registry) RouteFor(id *int) string {
	if id == nil {
		return r.Route(DefaultID)
	}
	return r.Route(*id)
}

// Label returns the display label for id, or the default label for unknown ids.
func (r *Registry) Label(id int) string {
	return r.resolve(id).Label
}

// Route returns the route token for id, or the default route for unknown ids.
func (r *Registry) Route(id int) string {
	return r.resolve(id).Route
}

// IDFor returns the id for a route token. Unlike TextFor and RouteFor there is
// no fallback: ok is false when no category uses the route.
func (r *Registry) IDFor(route string) (id int, ok bool) {
	i, ok := r.byRoute[route]
	if !ok {
		return 0, false
	}
	return r.categories[i].ID, true
}

// Lookup returns the category for id without falling back.
func (r *Registry) Lookup(id int) (Category, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}

// IDs returns every category id in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, len(r.categories))
	for i, c := range r.categories {
		ids[i] = c.ID
	}
	return ids
}

// IsValid reports whether id belongs to a category.
func (r *Registry) IsValid(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// Categories returns a copy of all categories in ascending id order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

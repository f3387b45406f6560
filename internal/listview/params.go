// Package listview turns wishlist list-view URL paths into view parameters.
//
// The list view is served under a single pattern, /{category}/{search}, where both
// segments are optional. Parsing never fails: unknown category tokens are kept so
// the caller can decide whether to redirect or show a not-found page.
package listview

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/raine/wishlist/internal/category"
)

// AllCategories is the category segment that disables category filtering. It
// is also used when the segment is missing.
const AllCategories = "all"

// Params are the initialization parameters of the list view.
type Params struct {
	Category string
	Search   string
}

// Filter is a category segment resolved against a registry.
type Filter struct {
	// All is set when no category filter applies.
	All bool
	// CategoryID is only meaningful when Known is true and All is false.
	CategoryID int
	// Known is false when the segment names no category.
	Known bool
}

var matcher = newMatcher()

func newMatcher() *chi.Mux {
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	mux := chi.NewRouter()
	mux.Get("/", noop)
	mux.Get("/{category}", noop)
	mux.Get("/{category}/*", noop)
	return mux
}

// Parse extracts list-view parameters from a URL path. Query strings and
// fragments are ignored and repeated slashes are collapsed, so "//cart" is the
// cart category rather than a search for "cart".
func Parse(path string) Params {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	p := Params{Category: AllCategories}

	rctx := chi.NewRouteContext()
	if !matcher.Match(rctx, http.MethodGet, path) {
		log.Debug().Str("path", path).Msg("list view path did not match")
		return p
	}

	if c := unescape(rctx.URLParam("category")); c != "" {
		p.Category = c
	}
	p.Search = unescape(rctx.URLParam("*"))
	return p
}

func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}

// Filter resolves the category segment against reg.
func (p Params) Filter(reg *category.Registry) Filter {
	if p.Category == "" || p.Category == AllCategories {
		return Filter{All: true, Known: true}
	}
	id, ok := reg.IDFor(p.Category)
	if !ok {
		log.Debug().Str("category", p.Category).Msg("unknown category in list view path")
		return Filter{}
	}
	return Filter{CategoryID: id, Known: true}
}

// Path returns the canonical path for p.
func (p Params) Path() string {
	return PathFor(p.Category, p.Search)
}

// PathFor builds the list-view path for a category route token and optional
// search text. An empty route means all categories.
func PathFor(route, search string) string {
	if route == "" {
		route = AllCategories
	}
	if search == "" {
		if route == AllCategories {
			return "/"
		}
		return "/" + url.PathEscape(route)
	}
	return "/" + url.PathEscape(route) + "/" + url.PathEscape(search)
}

// PathForID builds the list-view path for a category id. Unknown ids resolve to
// the default category, as with Registry.Route.
func PathForID(reg *category.Registry, id int, search string) string {
	return PathFor(reg.Route(id), search)
}

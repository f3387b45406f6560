package category

// Category ids are stored with wishlist items. Never reuse or renumber them.
const (
	Uncategorized = 0
	Purchase      = 1
	Consider      = 2
	Cart          = 3
)

// labels and routes are the hand-authored vocabulary. Everything else is
// derived from them in New.
var (
	labels = map[int]string{
		Uncategorized: "未分類",
		Purchase:      "購買",
		Consider:      "考慮",
		Cart:          "購物車",
	}

	routes = map[int]string{
		Uncategorized: "uncategorized",
		Purchase:      "purchase",
		Consider:      "consider",
		Cart:          "cart",
	}
)

var defaultRegistry = MustNew(labels, routes)

// Default returns the process-wide registry of built-in categories.
func Default() *Registry {
	return defaultRegistry
}

// TextFor returns the label for id from the default registry.
func TextFor(id *int) string { return defaultRegistry.TextFor(id) }

// RouteFor returns the route token for id from the default registry.
func RouteFor(id *int) string { return defaultRegistry.RouteFor(id) }

// IDFor returns the id for a route token from the default registry.
func IDFor(route string) (int, bool) { return defaultRegistry.IDFor(route) }

// IDs returns all built-in category ids in ascending order.
func IDs() []int { return defaultRegistry.IDs() }

// IsValid reports whether id is a built-in category.
func IsValid(id int) bool { return defaultRegistry.IsValid(id) }

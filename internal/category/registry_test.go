package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(i int) *int { return &i }

func TestDefaultVocabulary(t *testing.T) {
	assert.Equal(t, "考慮", TextFor(ptr(2)))
	assert.Equal(t, "cart", RouteFor(ptr(3)))

	id, ok := IDFor("purchase")
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = IDFor("bogus")
	assert.False(t, ok)

	assert.Equal(t, "未分類", TextFor(ptr(99)))
	assert.Equal(t, []int{0, 1, 2, 3}, IDs())
}

func TestRoundTripFromID(t *testing.T) {
	for _, id := range IDs() {
		got, ok := IDFor(RouteFor(ptr(id)))
		require.True(t, ok, "route for id %d not found", id)
		assert.Equal(t, id, got)
	}
}

func TestRoundTripFromRoute(t *testing.T) {
	for _, route := range []string{"uncategorized", "purchase", "consider", "cart"} {
		id, ok := IDFor(route)
		require.True(t, ok, "route %q not found", route)
		assert.Equal(t, route, RouteFor(&id))
	}
}

func TestFallbackIsTotal(t *testing.T) {
	defaultLabel := TextFor(ptr(0))
	defaultRoute := RouteFor(ptr(0))

	assert.Equal(t, defaultLabel, TextFor(nil))
	assert.Equal(t, defaultRoute, RouteFor(nil))

	for _, id := range []int{-1, -1 << 31, 4, 99, 1 << 30} {
		assert.NotPanics(t, func() {
			assert.Equal(t, defaultLabel, TextFor(&id))
			assert.Equal(t, defaultRoute, RouteFor(&id))
		})
	}
}

func TestIDForDoesNotFallBack(t *testing.T) {
	for _, route := range []string{"not-a-real-category", "", "all", "Cart", " cart", "0"} {
		id, ok := IDFor(route)
		assert.False(t, ok, "route %q", route)
		assert.Equal(t, 0, id)
	}
}

func TestIsValidMatchesIDs(t *testing.T) {
	ids := IDs()
	for id := -3; id <= len(ids)+3; id++ {
		assert.Equal(t, contains(ids, id), IsValid(id), "id %d", id)
	}
	assert.False(t, IsValid(1000))
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestIDsReturnsCopy(t *testing.T) {
	ids := IDs()
	ids[0] = 42
	assert.Equal(t, 0, IDs()[0])

	cats := Default().Categories()
	cats[1].Route = "hacked"
	assert.Equal(t, "purchase", Default().Route(Purchase))
}

func TestLookup(t *testing.T) {
	c, ok := Default().Lookup(Cart)
	require.True(t, ok)
	assert.Equal(t, Category{ID: 3, Label: "購物車", Route: "cart"}, c)

	_, ok = Default().Lookup(7)
	assert.False(t, ok)
}

func TestNewDerivesOrderFromIDs(t *testing.T) {
	r, err := New(
		map[int]string{10: "ten", 0: "zero", 5: "five"},
		map[int]string{5: "five", 10: "ten", 0: "zero"},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5, 10}, r.IDs())
	assert.Len(t, r.IDs(), 3)
	id, ok := r.IDFor("ten")
	assert.True(t, ok)
	assert.Equal(t, 10, id)
	assert.Equal(t, "zero", r.Label(6))
}

func TestNewRejectsInconsistentTables(t *testing.T) {
	tests := []struct {
		name   string
		labels map[int]string
		routes map[int]string
	}{
		{
			name:   "length mismatch",
			labels: map[int]string{0: "a", 1: "b"},
			routes: map[int]string{0: "a"},
		},
		{
			name:   "id sets differ",
			labels: map[int]string{0: "a", 1: "b"},
			routes: map[int]string{0: "a", 2: "b"},
		},
		{
			name:   "missing default",
			labels: map[int]string{1: "b"},
			routes: map[int]string{1: "b"},
		},
		{
			name:   "negative id",
			labels: map[int]string{0: "a", -1: "b"},
			routes: map[int]string{0: "a", -1: "b"},
		},
		{
			name:   "duplicate route",
			labels: map[int]string{0: "a", 1: "b"},
			routes: map[int]string{0: "same", 1: "same"},
		},
		{
			name:   "empty route",
			labels: map[int]string{0: "a"},
			routes: map[int]string{0: ""},
		},
		{
			name:   "route not url safe",
			labels: map[int]string{0: "a"},
			routes: map[int]string{0: "Un Categorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.labels, tt.routes)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, ErrInvalidRegistry), "got %v", err)
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(map[int]string{1: "x"}, map[int]string{1: "x"})
	})
}

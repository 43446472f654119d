// Package economy implements the XP currency and the cosmetic shop of Seeker Ball.
package economy

import (
	"fmt"
	"strings"
)

// Variant selects how a cosmetic is painted.
type Variant int

const (
	VariantSolid Variant = iota
	VariantShimmer
	VariantRainbow
)

// String returns the persisted name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantSolid:
		return "solid"
	case VariantShimmer:
		return "shimmer"
	case VariantRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// ParseVariant converts a variant name back into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid":
		return VariantSolid, nil
	case "shimmer":
		return VariantShimmer, nil
	case "rainbow":
		return VariantRainbow, nil
	default:
		return VariantSolid, fmt.Errorf("economy: unknown variant %q", s)
	}
}

// Cosmetic is a purchasable player skin.
type Cosmetic struct {
	ID        string
	Name      string
	Variant   Variant
	BaseColor string // "#rrggbb"
	Cost      float64
}

// Catalog is an immutable ordered list of cosmetics. The first entry is the
// free default skin.
type Catalog struct {
	items []Cosmetic
	index map[string]int
}

// NewCatalog builds a catalog from items. It panics when items is empty, when the
// first entry is not free, or when an id repeats; catalogs are defined at startup.
func NewCatalog(items []Cosmetic) *Catalog {
	if len(items) == 0 {
		panic("economy: empty catalog")
	}
	if items[0].Cost != 0 {
		panic("economy: default cosmetic must be free")
	}

	c := &Catalog{
		items: append([]Cosmetic(nil), items...),
		index: make(map[string]int, len(items)),
	}
	for i, it := range c.items {
		if _, dup := c.index[it.ID]; dup {
			panic(fmt.Sprintf("economy: duplicate cosmetic id %q", it.ID))
		}
		c.index[it.ID] = i
	}
	return c
}

// DefaultCatalog returns the built-in skin list.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Cosmetic{
		{ID: "classic", Name: "Classic", Variant: VariantSolid, BaseColor: "#ffd400", Cost: 0},
		{ID: "ember", Name: "Ember", Variant: VariantSolid, BaseColor: "#ff7a1a", Cost: 50},
		{ID: "ocean", Name: "Ocean", Variant: VariantSolid, BaseColor: "#3399ff", Cost: 100},
		{ID: "mint", Name: "Mint Shimmer", Variant: VariantShimmer, BaseColor: "#33ffaa", Cost: 250},
		{ID: "gold", Name: "Gold Shimmer", Variant: VariantShimmer, BaseColor: "#ffcc00", Cost: 500},
		{ID: "prism", Name: "Prism", Variant: VariantRainbow, BaseColor: "#ff00ff", Cost: 1000},
	})
}

// DefaultID returns the id of the free default cosmetic.
func (c *Catalog) DefaultID() string { return c.items[0].ID }

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Get returns the cosmetic with the given id.
func (c *Catalog) Get(id string) (Cosmetic, bool) {
	i, ok := c.index[id]
	if !ok {
		return Cosmetic{}, false
	}
	return c.items[i], true
}

// IDForColor maps a base color (legacy ballColor value) to the first cosmetic using it.
func (c *Catalog) IDForColor(color string) (string, bool) {
	color = strings.ToLower(strings.TrimSpace(color))
	for _, it := range c.items {
		if strings.ToLower(it.BaseColor) == color {
			return it.ID, true
		}
	}
	return "", false
}

// All returns a copy of the catalog entries in display order.
func (c *Catalog) All() []Cosmetic {
	return append([]Cosmetic(nil), c.items...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.items) }

// IndexOf returns the display position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// At returns the entry at display position i, wrapping around.
func (c *Catalog) At(i int) Cosmetic {
	n := len(c.items)
	return c.items[((i%n)+n)%n]
}

// Package plan holds the plan tiers and the price catalog that maps Stripe
// price ids onto them. Every component that needs to turn a price id or a
// metadata string into a tier goes through this package.
package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a purchasable plan level.
type Tier string

const (
	Starter  Tier = "starter"
	Pro      Tier = "pro"
	Lifetime Tier = "lifetime"
)

// Tiers lists every valid tier in display order.
var Tiers = []Tier{Starter, Pro, Lifetime}

var (
	ErrUnknownTier    = errors.New("unknown plan tier")
	ErrEmptyPrice     = errors.New("empty price id")
	ErrDuplicatePrice = errors.New("price id listed more than once")
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

// OneTime reports whether the tier is bought with a single payment rather
// than a recurring subscription.
func (t Tier) OneTime() bool { return t == Lifetime }

func (t Tier) String() string { return string(t) }

// ParseTier converts untrusted text (request input, provider metadata) into a
// Tier. Only the exact lowercase names are accepted.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Entry binds one price id to a tier.
type Entry struct {
	PriceID string
	Tier    Tier
}

// Catalog is the immutable price id -> tier table. The zero value resolves nothing.
type Catalog struct {
	byPrice map[string]Tier
}

// NewCatalog builds a catalog. Adding a tier price is a new Entry, never new code.
func NewCatalog(entries ...Entry) (Catalog, error) {
	byPrice := make(map[string]Tier, len(entries))
	for _, e := range entries {
		id := strings.TrimSpace(e.PriceID)
		if id == "" {
			return Catalog{}, fmt.Errorf("%w for tier %q", ErrEmptyPrice, e.Tier)
		}
		if !e.Tier.Valid() {
			return Catalog{}, fmt.Errorf("%w: %q for price %s", ErrUnknownTier, e.Tier, id)
		}
		if _, dup := byPrice[id]; dup {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicatePrice, id)
		}
		byPrice[id] = e.Tier
	}
	return Catalog{byPrice: byPrice}, nil
}

// Resolve returns the tier sold under priceID.
func (c Catalog) Resolve(priceID string) (Tier, bool) {
	t, ok := c.byPrice[priceID]
	return t, ok
}

// Len returns the number of price ids in the catalog.
func (c Catalog) Len() int { return len(c.byPrice) }

package catalog

import (
	"cmp"

	"propertyHub/internal/models"

	"golang.org/x/exp/slices"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortBedrooms  SortKey = "bedrooms"
)

var SortKeys = []SortKey{SortNewest, SortPriceLow, SortPriceHigh, SortBedrooms}

func (k SortKey) IsValid() bool {
	return slices.Contains(SortKeys, k)
}

// Sort returns a sorted copy of properties. Equal keys keep their relative
// order; an unknown key returns the copy unsorted.
func Sort(properties []models.Property, key SortKey) []models.Property {
	sorted := slices.Clone(properties)

	var compare func(a, b models.Property) int

	switch key {
	case SortNewest:
		compare = func(a, b models.Property) int { return cmp.Compare(b.YearBuilt, a.YearBuilt) }
	case SortPriceLow:
		compare = func(a, b models.Property) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		compare = func(a, b models.Property) int { return cmp.Compare(b.Price, a.Price) }
	case SortBedrooms:
		compare = func(a, b models.Property) int { return cmp.Compare(b.Bedrooms, a.Bedrooms) }
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, compare)

	return sorted
}

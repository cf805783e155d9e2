package catalog

import (
	"strings"

	"propertyHub/internal/models"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
)

// Filters narrows a search. Zero-valued fields do not narrow anything; the
// numeric bounds are pointers so that an explicit zero is still a bound.
type Filters struct {
	Location     string
	PropertyType models.PropertyType
	MinPrice     *int64
	MaxPrice     *int64
	MinBedrooms  *int
	// Amenities keeps a property if it lists any one of them.
	Amenities []string
}

type predicate func(p *models.Property) bool

// Search returns the properties matching freeText and every set filter, in
// catalog order. freeText matches case-insensitively against the title,
// location or description.
func (c *Catalog) Search(freeText string, filters Filters) []models.Property {
	return c.filter(append(textPredicates(freeText), filters.predicates()...)...)
}

func textPredicates(freeText string) []predicate {
	if freeText == `` {
		return nil
	}

	// a Caser keeps state, so each search gets its own
	fold := cases.Fold()
	needle := fold.String(freeText)

	return []predicate{func(p *models.Property) bool {
		return strings.Contains(fold.String(p.Title), needle) ||
			strings.Contains(fold.String(p.Location), needle) ||
			strings.Contains(fold.String(p.Description), needle)
	}}
}

func (f Filters) predicates() []predicate {
	var preds []predicate

	if f.Location != `` {
		location := f.Location
		preds = append(preds, func(p *models.Property) bool { return p.Location == location })
	}

	if f.PropertyType != `` {
		propertyType := f.PropertyType
		preds = append(preds, func(p *models.Property) bool { return p.Type == propertyType })
	}

	if f.MinPrice != nil {
		minPrice := *f.MinPrice
		preds = append(preds, func(p *models.Property) bool { return p.Price >= minPrice })
	}

	if f.MaxPrice != nil {
		maxPrice := *f.MaxPrice
		preds = append(preds, func(p *models.Property) bool { return p.Price <= maxPrice })
	}

	if f.MinBedrooms != nil {
		minBedrooms := *f.MinBedrooms
		preds = append(preds, func(p *models.Property) bool { return p.Bedrooms >= minBedrooms })
	}

	if len(f.Amenities) > 0 {
		wanted := slices.Clone(f.Amenities)
		preds = append(preds, func(p *models.Property) bool {
			return slices.ContainsFunc(wanted, func(amenity string) bool {
				return slices.Contains(p.Amenities, amenity)
			})
		})
	}

	return preds
}

func (c *Catalog) filter(preds ...predicate) []models.Property {
	results := make([]models.Property, 0, len(c.properties))

	for i := range c.properties {
		p := &c.properties[i]

		keep := true
		for _, pred := range preds {
			if !pred(p) {
				keep = false
				break
			}
		}

		if keep {
			results = append(results, *p)
		}
	}

	return results
}

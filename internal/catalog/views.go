package catalog

import (
	"propertyHub/internal/models"

	"golang.org/x/exp/slices"
)

const similarLimit = 3

func (c *Catalog) All() []models.Property {
	return c.filter()
}

func (c *Catalog) Len() int {
	return len(c.properties)
}

func (c *Catalog) Get(id string) (models.Property, error) {
	i, ok := c.byId[id]
	if !ok {
		return models.Property{}, ErrNotFound
	}

	return c.properties[i], nil
}

func (c *Catalog) Featured() []models.Property {
	return c.filter(func(p *models.Property) bool { return p.Featured })
}

func (c *Catalog) ByLocation(location string) []models.Property {
	return c.filter(func(p *models.Property) bool { return p.Location == location })
}

func (c *Catalog) ByType(propertyType models.PropertyType) []models.Property {
	return c.filter(func(p *models.Property) bool { return p.Type == propertyType })
}

func (c *Catalog) ByStatus(status models.Status) []models.Property {
	return c.filter(func(p *models.Property) bool { return p.Status == status })
}

// ByPriceRange keeps properties priced within [low, high].
func (c *Catalog) ByPriceRange(low, high int64) []models.Property {
	return c.filter(func(p *models.Property) bool { return p.Price >= low && p.Price <= high })
}

// Similar lists up to three featured properties, other than id, that share its
// location or type. An unknown id has no similar properties.
func (c *Catalog) Similar(id string) []models.Property {
	target, err := c.Get(id)
	if err != nil {
		return []models.Property{}
	}

	similar := c.filter(func(p *models.Property) bool {
		return p.Featured && p.Id != id && (p.Location == target.Location || p.Type == target.Type)
	})

	if len(similar) > similarLimit {
		similar = similar[:similarLimit]
	}

	return similar
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// CountByLocation counts properties for each reference location, in the
// order of Locations.
func (c *Catalog) CountByLocation() []LocationCount {
	counts := make([]LocationCount, 0, len(locations))

	for _, location := range locations {
		counts = append(counts, LocationCount{Location: location, Count: len(c.ByLocation(location))})
	}

	return counts
}

func (c *Catalog) CountByType() map[models.PropertyType]int {
	counts := make(map[models.PropertyType]int, len(models.PropertyTypes))

	for _, t := range models.PropertyTypes {
		counts[t] = 0
	}

	for _, p := range c.properties {
		counts[p.Type]++
	}

	return counts
}

var locations = []string{
	"Goa, India",
	"Dubai, UAE",
	"Mumbai, India",
	"Delhi, India",
	"Bangalore, India",
	"Chennai, India",
	"Abu Dhabi, UAE",
	"Sharjah, UAE",
}

var amenities = []string{
	"Swimming Pool",
	"Gym",
	"Garden",
	"Balcony",
	"Parking",
	"Security",
	"Wi-Fi",
	"Air Conditioning",
	"Elevator",
	"Terrace",
	"Sea View",
	"City View",
	"Near Beach",
	"Shopping Mall Nearby",
	"Restaurant",
	"Spa",
	"Concierge",
	"Pet Friendly",
}

func Locations() []string {
	return slices.Clone(locations)
}

// Amenities is the vocabulary offered by the search and upload forms. Listed
// properties may carry amenities outside it.
func Amenities() []string {
	return slices.Clone(amenities)
}

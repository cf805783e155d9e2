package catalog

import (
	"fmt"

	"propertyHub/internal/models"

	"github.com/mmcloughlin/geohash"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	crore = 10000000
	lakh  = 100000

	geohashPrecision = 7
)

// FormatPrice renders a rupee price as crores or lakhs with one decimal,
// falling back to grouped digits below one lakh.
func FormatPrice(price int64) string {
	switch {
	case price >= crore:
		return fmt.Sprintf("₹%.1fCr", float64(price)/crore)
	case price >= lakh:
		return fmt.Sprintf("₹%.1fL", float64(price)/lakh)
	default:
		return message.NewPrinter(language.English).Sprintf("₹%d", price)
	}
}

func Geohash(p models.Property) string {
	return geohash.EncodeWithPrecision(p.Coordinates.Lat, p.Coordinates.Lng, geohashPrecision)
}

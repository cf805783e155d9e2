package handlers

import (
	"errors"
	"net/http"

	"propertyHub/internal/catalog"
	"propertyHub/internal/models"

	"github.com/gorilla/mux"
)

type SearchResponse struct {
	Total      int               `json:"total"`
	Properties []models.Property `json:"properties"`
}

type PropertyDetails struct {
	Property       models.Property   `json:"property"`
	FormattedPrice string            `json:"formattedPrice"`
	Geohash        string            `json:"geohash"`
	Similar        []models.Property `json:"similar"`
}

// parseSearch reads the free text, filters and sort key of a search request.
func parseSearch(r *http.Request) (string, catalog.Filters, catalog.SortKey, error) {
	query := r.URL.Query()

	filters := catalog.Filters{
		Location:     query.Get(`location`),
		PropertyType: models.PropertyType(query.Get(`type`)),
		Amenities:    listParam(r, `amenities`),
	}

	if filters.PropertyType != `` && !filters.PropertyType.IsValid() {
		return ``, filters, ``, errors.New("no such property type")
	}

	var err error
	if filters.MinPrice, err = optionalInt64(r, `min_price`); err != nil {
		return ``, filters, ``, errors.New("invalid min_price")
	}

	if filters.MaxPrice, err = optionalInt64(r, `max_price`); err != nil {
		return ``, filters, ``, errors.New("invalid max_price")
	}

	if filters.MinBedrooms, err = optionalInt(r, `bedrooms`); err != nil {
		return ``, filters, ``, errors.New("invalid bedrooms")
	}

	sortKey := catalog.SortKey(query.Get(`sort`))
	if sortKey != `` && !sortKey.IsValid() {
		return ``, filters, ``, errors.New("no such sort key")
	}

	return query.Get(`q`), filters, sortKey, nil
}

func SearchHandler(c *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		freeText, filters, sortKey, err := parseSearch(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		results := c.Search(freeText, filters)
		if sortKey != `` {
			results = catalog.Sort(results, sortKey)
		}

		writeJSON(w, http.StatusOK, SearchResponse{Total: len(results), Properties: results})
	})
}

func FeaturedHandler(c *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		featured := c.Featured()
		writeJSON(w, http.StatusOK, SearchResponse{Total: len(featured), Properties: featured})
	})
}

func PropertyHandler(c *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		property, err := c.Get(id)
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "Property not found")
			return
		}

		writeJSON(w, http.StatusOK, PropertyDetails{
			Property:       property,
			FormattedPrice: catalog.FormatPrice(property.Price),
			Geohash:        catalog.Geohash(property),
			Similar:        c.Similar(id),
		})
	})
}

func LocationsHandler(c *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, c.CountByLocation())
	})
}

func AmenitiesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Amenities())
}

package postgres

import (
	"context"
	"fmt"

	"propertyHub/internal/models"

	"github.com/lib/pq"
)

const upsertProperty = `INSERT INTO property (id, title, location, price, size, bedrooms, bathrooms, type,
	images, description, amenities, contact_name, contact_phone, contact_email, featured, status, lat, lng,
	year_built, parking, furnished)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, location = EXCLUDED.location,
	price = EXCLUDED.price, size = EXCLUDED.size, bedrooms = EXCLUDED.bedrooms,
	bathrooms = EXCLUDED.bathrooms, type = EXCLUDED.type, images = EXCLUDED.images,
	description = EXCLUDED.description, amenities = EXCLUDED.amenities,
	contact_name = EXCLUDED.contact_name, contact_phone = EXCLUDED.contact_phone,
	contact_email = EXCLUDED.contact_email, featured = EXCLUDED.featured, status = EXCLUDED.status,
	lat = EXCLUDED.lat, lng = EXCLUDED.lng, year_built = EXCLUDED.year_built,
	parking = EXCLUDED.parking, furnished = EXCLUDED.furnished`

// SaveProperties writes properties in one transaction. Existing rows keep their
// position, new rows are appended in slice order.
func (storage *Storage) SaveProperties(ctx context.Context, properties []models.Property) error {
	tx, err := storage.Db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertProperty)
	if err != nil {
		return err
	}

	defer stmt.Close()

	for _, p := range properties {
		if _, err := stmt.ExecContext(ctx, p.Id, p.Title, p.Location, p.Price, p.Size, p.Bedrooms,
			p.Bathrooms, p.Type, pq.Array(p.Images), p.Description, pq.Array(p.Amenities), p.Contact.Name,
			p.Contact.Phone, p.Contact.Email, p.Featured, p.Status, p.Coordinates.Lat, p.Coordinates.Lng,
			p.YearBuilt, p.Parking, p.Furnished); err != nil {
			return fmt.Errorf("save property %q: %w", p.Id, err)
		}
	}

	return tx.Commit()
}

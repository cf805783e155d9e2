package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"propertyHub/internal/models"

	"github.com/lib/pq"
)

const driverName = "postgres"

const createTables = `CREATE TABLE IF NOT EXISTS property (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	location      TEXT NOT NULL,
	price         BIGINT NOT NULL CHECK (price > 0),
	size          TEXT NOT NULL,
	bedrooms      INT NOT NULL DEFAULT 0,
	bathrooms     INT NOT NULL DEFAULT 0,
	type          TEXT NOT NULL,
	images        TEXT[] NOT NULL,
	description   TEXT NOT NULL,
	amenities     TEXT[] NOT NULL DEFAULT '{}',
	contact_name  TEXT NOT NULL DEFAULT '',
	contact_phone TEXT NOT NULL DEFAULT '',
	contact_email TEXT NOT NULL DEFAULT '',
	featured      BOOLEAN NOT NULL DEFAULT FALSE,
	status        TEXT NOT NULL DEFAULT 'available',
	lat           DOUBLE PRECISION NOT NULL DEFAULT 0,
	lng           DOUBLE PRECISION NOT NULL DEFAULT 0,
	year_built    INT NOT NULL,
	parking       BOOLEAN NOT NULL DEFAULT FALSE,
	furnished     BOOLEAN NOT NULL DEFAULT FALSE,
	position      SERIAL
)`

// Storage reads the property catalog from PostgreSQL. It is only read once,
// when the catalog is built.
type Storage struct {
	Db *sql.DB
}

func New(ctx context.Context, databaseURL string) (*Storage, error) {
	database, err := sql.Open(driverName, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, err
	}

	storage := &Storage{Db: database}

	if err := storage.init(ctx); err != nil {
		database.Close()
		return nil, err
	}

	return storage, nil
}

func (storage *Storage) init(ctx context.Context) error {
	if _, err := storage.Db.ExecContext(ctx, createTables); err != nil {
		return fmt.Errorf("create property table: %w", err)
	}

	return nil
}

func (storage *Storage) LoadProperties(ctx context.Context) ([]models.Property, error) {
	query := `SELECT id, title, location, price, size, bedrooms, bathrooms, type, images, description,
	amenities, contact_name, contact_phone, contact_email, featured, status, lat, lng, year_built,
	parking, furnished FROM property ORDER BY position`

	rows, err := storage.Db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var properties []models.Property

	for rows.Next() {
		var curr models.Property

		if err := rows.Scan(&curr.Id, &curr.Title, &curr.Location, &curr.Price, &curr.Size,
			&curr.Bedrooms, &curr.Bathrooms, &curr.Type, pq.Array(&curr.Images), &curr.Description,
			pq.Array(&curr.Amenities), &curr.Contact.Name, &curr.Contact.Phone, &curr.Contact.Email,
			&curr.Featured, &curr.Status, &curr.Coordinates.Lat, &curr.Coordinates.Lng, &curr.YearBuilt,
			&curr.Parking, &curr.Furnished); err != nil {
			return nil, err
		}

		properties = append(properties, curr)
	}

	return properties, rows.Err()
}

func (storage *Storage) Close() error {
	return storage.Db.Close()
}

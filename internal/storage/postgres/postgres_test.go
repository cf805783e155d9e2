package postgres

import (
	"context"
	"os"
	"testing"

	"propertyHub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProperties(t *testing.T) {
	databaseURL := os.Getenv(`TEST_DATABASE_URL`)
	if databaseURL == `` {
		t.Skip(`TEST_DATABASE_URL is not set`)
	}

	ctx := context.Background()

	storage, err := New(ctx, databaseURL)
	require.NoError(t, err)
	defer storage.Close()

	_, err = storage.Db.ExecContext(ctx, `DELETE FROM property WHERE id = 'test-1'`)
	require.NoError(t, err)

	_, err = storage.Db.ExecContext(ctx, `INSERT INTO property (id, title, location, price, size, type, images,
	description, amenities, year_built) VALUES ('test-1', 'Test Villa', 'Goa, India', 100, '10 sq ft', 'villa',
	'{"https://example.com/a.jpg"}', 'test', '{"Gym","Garden"}', 2020)`)
	require.NoError(t, err)
	defer storage.Db.ExecContext(ctx, `DELETE FROM property WHERE id = 'test-1'`)

	properties, err := storage.LoadProperties(ctx)
	require.NoError(t, err)

	var found bool
	for _, p := range properties {
		if p.Id == `test-1` {
			found = true
			assert.Equal(t, []string{`Gym`, `Garden`}, p.Amenities)
			assert.Equal(t, []string{`https://example.com/a.jpg`}, p.Images)
			assert.Equal(t, int64(100), p.Price)
		}
	}

	assert.True(t, found)
}

func TestSaveProperties(t *testing.T) {
	databaseURL := os.Getenv(`TEST_DATABASE_URL`)
	if databaseURL == `` {
		t.Skip(`TEST_DATABASE_URL is not set`)
	}

	ctx := context.Background()

	storage, err := New(ctx, databaseURL)
	require.NoError(t, err)
	defer storage.Close()

	defer storage.Db.ExecContext(ctx, `DELETE FROM property WHERE id = 'test-2'`)

	property := models.Property{
		Id: `test-2`, Title: `Seeded House`, Location: `Mumbai, India`, Price: 500, Size: `20 sq ft`,
		Type: models.House, Images: []string{`https://example.com/b.jpg`}, Description: `seeded`,
		Amenities: []string{`Parking`}, Status: models.Available, YearBuilt: 2019,
	}
	require.NoError(t, storage.SaveProperties(ctx, []models.Property{property}))

	property.Price = 600
	require.NoError(t, storage.SaveProperties(ctx, []models.Property{property}))

	properties, err := storage.LoadProperties(ctx)
	require.NoError(t, err)

	var saved []models.Property
	for _, p := range properties {
		if p.Id == `test-2` {
			saved = append(saved, p)
		}
	}

	require.Len(t, saved, 1)
	assert.Equal(t, int64(600), saved[0].Price)
	assert.Equal(t, []string{`Parking`}, saved[0].Amenities)
}

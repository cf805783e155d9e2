package storage

import (
	"context"
	"errors"

	"propertyHub/internal/models"
)

var ErrNotFound = errors.New("key not found")

// KeyValue is the host persistence facility the admin session record lives in.
// Get returns ErrNotFound when the key is absent.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

type PropertySource interface {
	LoadProperties(ctx context.Context) ([]models.Property, error)
}

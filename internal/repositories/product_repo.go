package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"
)

// ErrNotFound is returned when a point lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ErrConflict is matched by every *ConflictError via errors.Is.
var ErrConflict = errors.New("unique constraint violation")

// ConflictError reports a uniqueness violation on title or slug.
// Detail is the storage engine's description of the violated constraint.
type ConflictError struct {
	Detail string
	Err    error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unique constraint violation: %s", e.Detail)
}

func (e *ConflictError) Unwrap() error { return e.Err }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ProductRepository defines the interface for product data access.
// Images are owned by their product: deleting a product through this
// interface always deletes its images as part of the same write.
type ProductRepository interface {
	// FindByID returns the product with its images, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// FindBySlugOrTitle matches slug or title case-insensitively, or returns ErrNotFound.
	FindBySlugOrTitle(ctx context.Context, term string) (*models.Product, error)
	// FindPage returns up to limit products after skipping offset, in stored order.
	FindPage(ctx context.Context, offset, limit int) ([]models.Product, error)

	// Create inserts the product and its images as one write.
	Create(ctx context.Context, product *models.Product) error
	// Save persists every non-image field of an existing product, or returns ErrNotFound.
	Save(ctx context.Context, product *models.Product) error
	DeleteImages(ctx context.Context, productID string) error
	InsertImages(ctx context.Context, productID string, urls []string) error
	// Delete removes the product and its images and reports how many products were removed.
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteAll removes every product and image and reports how many products were removed.
	DeleteAll(ctx context.Context) (int64, error)
	// BulkInsert stores products with their images in a single write, in list order.
	BulkInsert(ctx context.Context, products []models.Product) error

	// Transaction runs fn against a repository bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(repo ProductRepository) error) error
}

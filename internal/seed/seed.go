// Package seed resets the catalog to a fixed demo dataset.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

// Message is returned by Run on success.
const Message = "Seed successfully"

// Deleter empties the catalog. *services.ProductService implements it.
type Deleter interface {
	DeleteAllProducts(ctx context.Context) (*services.DeleteResult, error)
}

// Loader deletes every product and bulk inserts Products.
type Loader struct {
	catalog   Deleter
	repo      repositories.ProductRepository
	publisher services.EventPublisher
	logger    *slog.Logger
}

// NewLoader creates a Loader. publisher may be nil.
func NewLoader(catalog Deleter, repo repositories.ProductRepository, publisher services.EventPublisher, logger *slog.Logger) *Loader {
	return &Loader{
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "seed")),
	}
}

// Run replaces the catalog contents with the seed dataset. The insert goes
// straight to the repository in one write and skips CreateProduct's slug
// derivation.
func (l *Loader) Run(ctx context.Context) (string, error) {
	deleted, err := l.catalog.DeleteAllProducts(ctx)
	if err != nil {
		return "", err
	}

	products := Products()
	rows := make([]models.Product, len(products))
	for i, p := range products {
		rows[i] = models.Product{
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Slug:        p.Slug,
			Stock:       p.Stock,
			Sizes:       p.Sizes,
			Gender:      p.Gender,
			Tags:        p.Tags,
			Images:      models.NewImages(p.Images),
		}
	}

	if err := l.repo.BulkInsert(ctx, rows); err != nil {
		return "", fmt.Errorf("failed to insert seed products: %w", err)
	}

	l.logger.InfoContext(ctx, "catalog seeded",
		slog.Int64("deleted", deleted.Affected),
		slog.Int("inserted", len(rows)),
	)
	if l.publisher != nil {
		if err := l.publisher.PublishEvent(ctx, rabbitmq.NewEvent(rabbitmq.CatalogSeeded, "", len(rows))); err != nil {
			l.logger.WarnContext(ctx, "failed to publish seed event", slog.Any("error", err))
		}
	}
	return Message, nil
}

package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"

	"github.com/google/uuid"
)

// DefaultLimit is the page size used when the caller does not supply one.
const DefaultLimit = 5

// EventPublisher delivers catalog events. *rabbitmq.Client implements it.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event rabbitmq.Event) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	logger    *slog.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case events are not published.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		logger:    logger.With(slog.String("component", "product_service")),
	}
}

// CreateProductInput holds the already validated fields of a new product.
type CreateProductInput struct {
	Title       string
	Price       *float64
	Description *string
	Slug        *string
	Stock       int
	Sizes       []string
	Gender      models.Gender
	Tags        []string
	Images      []string
}

// ProductPatch is a partial update. Nil pointers and nil slices are absent
// fields; an empty Images slice also leaves the images untouched.
type ProductPatch struct {
	Title       *string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       []string
	Gender      *models.Gender
	Tags        []string
	Images      []string
}

// Pagination selects a page of products. Non-positive Limit means DefaultLimit.
type Pagination struct {
	Limit  int
	Offset int
}

// DeleteResult reports how many products a bulk delete removed.
type DeleteResult struct {
	Affected int64 `json:"affected"`
}

// ProductDto is a product with its images resolved to plain URLs.
type ProductDto struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Slug        string        `json:"slug"`
	Stock       int           `json:"stock"`
	Sizes       []string      `json:"sizes"`
	Gender      models.Gender `json:"gender"`
	Tags        []string      `json:"tags"`
	Images      []string      `json:"images"`
}

// CreateProduct stores a new product and its images as a single write.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDto, error) {
	product := models.Product{
		Title:  input.Title,
		Stock:  input.Stock,
		Sizes:  nonNil(input.Sizes),
		Gender: input.Gender,
		Tags:   nonNil(input.Tags),
		Images: models.NewImages(input.Images),
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Slug != nil && *input.Slug != "" {
		product.Slug = models.Slugify(*input.Slug)
	} else {
		product.Slug = models.Slugify(input.Title)
	}

	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, s.storageError(ctx, "create product", err)
	}

	s.publish(ctx, rabbitmq.NewEvent(rabbitmq.ProductCreated, product.ID, 0))
	return toDto(&product), nil
}

// ListProducts returns one page of products in stored order.
func (s *ProductService) ListProducts(ctx context.Context, page Pagination) ([]ProductDto, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset := max(page.Offset, 0)

	products, err := s.repo.FindPage(ctx, offset, limit)
	if err != nil {
		return nil, s.storageError(ctx, "list products", err)
	}

	dtos := make([]ProductDto, len(products))
	for i := range products {
		dtos[i] = *toDto(&products[i])
	}
	return dtos, nil
}

// FindByTerm resolves term as a product ID first and, failing that, as a
// case-insensitive slug or title.
func (s *ProductService) FindByTerm(ctx context.Context, term string) (*ProductDto, error) {
	var product *models.Product

	if uuid.Validate(term) == nil {
		found, err := s.repo.FindByID(ctx, term)
		switch {
		case err == nil:
			product = found
		case !errors.Is(err, repositories.ErrNotFound):
			return nil, s.storageError(ctx, "find product by id", err)
		}
	}

	if product == nil && strings.TrimSpace(term) != "" {
		found, err := s.repo.FindBySlugOrTitle(ctx, term)
		switch {
		case err == nil:
			product = found
		case !errors.Is(err, repositories.ErrNotFound):
			return nil, s.storageError(ctx, "find product by slug or title", err)
		}
	}

	if product == nil {
		return nil, apperrors.NotFound("Product not found with term: %s", term)
	}
	return toDto(product), nil
}

// UpdateProduct merges patch onto the stored product and, in one
// transaction, replaces its images (when patch carries any) and saves the
// merged fields. Either both changes commit or neither does.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*ProductDto, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found with id: %s", id)
		}
		return nil, s.storageError(ctx, "load product for update", err)
	}

	candidate := ApplyPatch(*current, patch)

	err = s.repo.Transaction(ctx, func(tx repositories.ProductRepository) error {
		if len(patch.Images) > 0 {
			if err := tx.DeleteImages(ctx, id); err != nil {
				return err
			}
			if err := tx.InsertImages(ctx, id, patch.Images); err != nil {
				return err
			}
		}
		return tx.Save(ctx, &candidate)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found with id: %s", id)
		}
		return nil, s.storageError(ctx, "update product", err)
	}

	s.publish(ctx, rabbitmq.NewEvent(rabbitmq.ProductUpdated, id, 0))
	return s.FindByTerm(ctx, id)
}

// DeleteProduct deletes the product whose ID equals term, with its images.
func (s *ProductService) DeleteProduct(ctx context.Context, term string) (int64, error) {
	affected, err := s.repo.Delete(ctx, term)
	if err != nil {
		return 0, s.storageError(ctx, "delete product", err)
	}
	if affected == 0 {
		return 0, apperrors.NotFound("Product not found")
	}

	s.publish(ctx, rabbitmq.NewEvent(rabbitmq.ProductDeleted, term, 0))
	return affected, nil
}

// DeleteAllProducts deletes every product and image. Only the seed loader calls it.
func (s *ProductService) DeleteAllProducts(ctx context.Context) (*DeleteResult, error) {
	affected, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return nil, s.storageError(ctx, "delete all products", err)
	}
	return &DeleteResult{Affected: affected}, nil
}

// ApplyPatch returns base with every present field of patch applied.
// Images are not merged; they are replaced by UpdateProduct's transaction.
func ApplyPatch(base models.Product, patch ProductPatch) models.Product {
	merged := base
	merged.Sizes = append([]string{}, base.Sizes...)
	merged.Tags = append([]string{}, base.Tags...)
	merged.Images = append([]models.ProductImage(nil), base.Images...)

	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Slug != nil {
		merged.Slug = models.Slugify(*patch.Slug)
	}
	if patch.Stock != nil {
		merged.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		merged.Sizes = append([]string{}, patch.Sizes...)
	}
	if patch.Gender != nil {
		merged.Gender = *patch.Gender
	}
	if patch.Tags != nil {
		merged.Tags = append([]string{}, patch.Tags...)
	}
	return merged
}

// storageError classifies a repository failure. Conflicts keep the
// constraint detail; anything else is logged and hidden behind an opaque message.
func (s *ProductService) storageError(ctx context.Context, op string, err error) error {
	var conflict *repositories.ConflictError
	if errors.As(err, &conflict) {
		return apperrors.Conflict(conflict.Detail, err)
	}
	s.logger.ErrorContext(ctx, "storage failure", slog.String("op", op), slog.Any("error", err))
	return apperrors.Internal(err)
}

func (s *ProductService) publish(ctx context.Context, event rabbitmq.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event",
			slog.String("event", event.Name),
			slog.String("product_id", event.ProductID),
			slog.Any("error", err),
		)
	}
}

func toDto(product *models.Product) *ProductDto {
	return &ProductDto{
		ID:          product.ID,
		Title:       product.Title,
		Price:       product.Price,
		Description: product.Description,
		Slug:        product.Slug,
		Stock:       product.Stock,
		Sizes:       nonNil(product.Sizes),
		Gender:      product.Gender,
		Tags:        nonNil(product.Tags),
		Images:      product.ImageURLs(),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

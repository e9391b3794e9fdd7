package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindBySlugOrTitle retrieves the product whose slug or title equals term, ignoring case.
func (r *GORMProductRepository) FindBySlugOrTitle(ctx context.Context, term string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("LOWER(slug) = LOWER(?) OR LOWER(title) = LOWER(?)", term, term).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by slug or title %q: %w", term, err)
	}
	return &product, nil
}

// FindPage retrieves one page of products ordered by creation time.
func (r *GORMProductRepository) FindPage(ctx context.Context, offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Order("created_at ASC").Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products page: %w", err)
	}
	return products, nil
}

// Create creates a new product and its images in the database.
// GORM wraps the product insert and the association insert in one transaction.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", r.translate(err))
	}
	return nil
}

// Save updates every column except the key, creation time and images.
func (r *GORMProductRepository) Save(ctx context.Context, product *models.Product) error {
	fields := *product
	fields.Images = nil
	res := r.db.WithContext(ctx).
		Model(&models.Product{ID: product.ID}).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", r.translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteImages removes every image owned by the product.
func (r *GORMProductRepository) DeleteImages(ctx context.Context, productID string) error {
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductImage{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete images of product %s: %w", productID, err)
	}
	return nil
}

// InsertImages attaches one image per URL to the product, in order.
func (r *GORMProductRepository) InsertImages(ctx context.Context, productID string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	images := models.NewImages(urls)
	for i := range images {
		images[i].ProductID = productID
	}
	if err := r.db.WithContext(ctx).Create(&images).Error; err != nil {
		return fmt.Errorf("failed to insert images of product %s: %w", productID, r.translate(err))
	}
	return nil
}

// Delete deletes a product and its images by the product ID.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return affected, nil
}

// DeleteAll deletes every image and every product.
func (r *GORMProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		res := all.Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete all products: %w", err)
	}
	return affected, nil
}

// BulkInsert inserts all products and their images in one statement batch.
// Creation times are stamped in list order so FindPage returns them that way.
func (r *GORMProductRepository) BulkInsert(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	base := time.Now()
	for i := range products {
		if products[i].CreatedAt.IsZero() {
			products[i].CreatedAt = base.Add(time.Duration(i) * time.Microsecond)
		}
	}
	if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("failed to bulk insert products: %w", r.translate(err))
	}
	return nil
}

// Transaction binds a repository to a single database transaction.
func (r *GORMProductRepository) Transaction(ctx context.Context, fn func(repo ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GORMProductRepository{db: tx})
	})
}

// translate turns driver-specific unique violations into a *ConflictError.
func (r *GORMProductRepository) translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return &ConflictError{Detail: detail, Err: err}
	}
	if translator, ok := r.db.Dialector.(gorm.ErrorTranslator); ok {
		if errors.Is(translator.Translate(err), gorm.ErrDuplicatedKey) {
			return &ConflictError{Detail: err.Error(), Err: err}
		}
	}
	return err
}

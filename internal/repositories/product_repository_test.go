package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"catalog/internal/database/dbtest"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations returns a fresh instance of every ProductRepository adapter.
func implementations(t *testing.T) map[string]repositories.ProductRepository {
	return map[string]repositories.ProductRepository{
		"memory": repositories.NewMemoryProductRepository(),
		"sqlite": repositories.NewGORMProductRepository(dbtest.OpenTestSQLite(t)),
	}
}

func newProduct(title string, urls ...string) *models.Product {
	return &models.Product{
		Title:  title,
		Slug:   models.Slugify(title),
		Price:  10,
		Stock:  1,
		Sizes:  []string{"S", "M"},
		Gender: models.GenderUnisex,
		Tags:   []string{"shirt"},
		Images: models.NewImages(urls),
	}
}

func forEachRepository(t *testing.T, fn func(t *testing.T, repo repositories.ProductRepository)) {
	for name, repo := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			fn(t, repo)
		})
	}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		product := newProduct("Chill Hoodie", "1.jpg", "2.jpg", "3.jpg")

		require.NoError(t, repo.Create(ctx, product))
		require.NotEmpty(t, product.ID)

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chill Hoodie", found.Title)
		assert.Equal(t, []string{"S", "M"}, found.Sizes)
		assert.Equal(t, []string{"1.jpg", "2.jpg", "3.jpg"}, found.ImageURLs())

		bySlug, err := repo.FindBySlugOrTitle(ctx, "CHILL-HOODIE")
		require.NoError(t, err)
		assert.Equal(t, product.ID, bySlug.ID)

		byTitle, err := repo.FindBySlugOrTitle(ctx, "chill hoodie")
		require.NoError(t, err)
		assert.Equal(t, product.ID, byTitle.ID)

		_, err = repo.FindByID(ctx, "6f1a3c1e-0000-4000-8000-000000000000")
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = repo.FindBySlugOrTitle(ctx, "missing")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestProductRepository_CreateConflict(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newProduct("Chill Hoodie", "1.jpg")))

		sameTitle := newProduct("Chill Hoodie", "x.jpg")
		sameTitle.Slug = "other-slug"
		err := repo.Create(ctx, sameTitle)
		require.ErrorIs(t, err, repositories.ErrConflict)

		var conflict *repositories.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.NotEmpty(t, conflict.Detail)

		sameSlug := newProduct("Other Hoodie")
		sameSlug.Slug = "chill-hoodie"
		assert.ErrorIs(t, repo.Create(ctx, sameSlug), repositories.ErrConflict)

		page, err := repo.FindPage(ctx, 0, 10)
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})
}

func TestProductRepository_FindPage(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		seed := make([]models.Product, 5)
		for i := range seed {
			seed[i] = *newProduct(fmt.Sprintf("Product %d", i+1), fmt.Sprintf("%d.jpg", i+1))
		}
		require.NoError(t, repo.BulkInsert(ctx, seed))

		page, err := repo.FindPage(ctx, 1, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "Product 2", page[0].Title)
		assert.Equal(t, "Product 3", page[1].Title)
		assert.Equal(t, []string{"2.jpg"}, page[0].ImageURLs())

		all, err := repo.FindPage(ctx, 0, 100)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		past, err := repo.FindPage(ctx, 10, 5)
		require.NoError(t, err)
		assert.Empty(t, past)
	})
}

func TestProductRepository_Save(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		product := newProduct("Chill Hoodie", "1.jpg")
		require.NoError(t, repo.Create(ctx, product))

		changed := *product
		changed.Stock = 0
		changed.Price = 0
		changed.Tags = []string{}
		changed.Images = nil
		require.NoError(t, repo.Save(ctx, &changed))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Stock)
		assert.Equal(t, float64(0), found.Price)
		assert.Empty(t, found.Tags)
		assert.Equal(t, []string{"1.jpg"}, found.ImageURLs(), "Save must not touch images")

		missing := *product
		missing.ID = "6f1a3c1e-0000-4000-8000-000000000000"
		missing.Title = "Ghost"
		missing.Slug = "ghost"
		assert.ErrorIs(t, repo.Save(ctx, &missing), repositories.ErrNotFound)
	})
}

func TestProductRepository_TransactionCommit(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		product := newProduct("Chill Hoodie", "old-1.jpg", "old-2.jpg")
		require.NoError(t, repo.Create(ctx, product))

		err := repo.Transaction(ctx, func(tx repositories.ProductRepository) error {
			if err := tx.DeleteImages(ctx, product.ID); err != nil {
				return err
			}
			if err := tx.InsertImages(ctx, product.ID, []string{"a", "b"}); err != nil {
				return err
			}
			changed := *product
			changed.Stock = 42
			return tx.Save(ctx, &changed)
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, found.ImageURLs())
		assert.Equal(t, 42, found.Stock)
	})
}

func TestProductRepository_TransactionRollback(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		product := newProduct("Chill Hoodie", "old-1.jpg", "old-2.jpg")
		other := newProduct("Zip Up Hoodie")
		require.NoError(t, repo.Create(ctx, product))
		require.NoError(t, repo.Create(ctx, other))

		err := repo.Transaction(ctx, func(tx repositories.ProductRepository) error {
			if err := tx.DeleteImages(ctx, product.ID); err != nil {
				return err
			}
			if err := tx.InsertImages(ctx, product.ID, []string{"a", "b"}); err != nil {
				return err
			}
			changed := *product
			changed.Slug = other.Slug
			return tx.Save(ctx, &changed)
		})
		require.ErrorIs(t, err, repositories.ErrConflict)

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"old-1.jpg", "old-2.jpg"}, found.ImageURLs())
		assert.Equal(t, "chill-hoodie", found.Slug)
	})
}

func TestProductRepository_Delete(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		product := newProduct("Chill Hoodie", "1.jpg")
		require.NoError(t, repo.Create(ctx, product))

		affected, err := repo.Delete(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		_, err = repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		affected, err = repo.Delete(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestProductRepository_DeleteAll(t *testing.T) {
	forEachRepository(t, func(t *testing.T, repo repositories.ProductRepository) {
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, newProduct("One", "1.jpg")))
		require.NoError(t, repo.Create(ctx, newProduct("Two", "2.jpg")))

		affected, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		page, err := repo.FindPage(ctx, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, page)
	})
}

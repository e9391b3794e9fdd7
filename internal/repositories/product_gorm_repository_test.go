package repositories_test

import (
	"context"
	"testing"

	"catalog/internal/database/dbtest"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMProductRepository_DeleteRemovesImageRows(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenTestSQLite(t)
	repo := repositories.NewGORMProductRepository(db)

	keep := newProduct("Keep", "k.jpg")
	drop := newProduct("Drop", "d1.jpg", "d2.jpg")
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))

	_, err := repo.Delete(ctx, drop.ID)
	require.NoError(t, err)

	var orphans int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", drop.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	var kept int64
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", keep.ID).Count(&kept).Error)
	assert.Equal(t, int64(1), kept)
}

func TestGORMProductRepository_DeleteAllRemovesImageRows(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenTestSQLite(t)
	repo := repositories.NewGORMProductRepository(db)

	require.NoError(t, repo.BulkInsert(ctx, []models.Product{*newProduct("One", "1.jpg"), *newProduct("Two", "2.jpg", "3.jpg")}))

	_, err := repo.DeleteAll(ctx)
	require.NoError(t, err)

	var images int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&images).Error)
	assert.Zero(t, images)
}

func TestGORMProductRepository_ReplaceImagesLeavesNoLeftovers(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenTestSQLite(t)
	repo := repositories.NewGORMProductRepository(db)

	product := newProduct("Chill Hoodie", "old-1.jpg", "old-2.jpg", "old-3.jpg")
	require.NoError(t, repo.Create(ctx, product))

	err := repo.Transaction(ctx, func(tx repositories.ProductRepository) error {
		if err := tx.DeleteImages(ctx, product.ID); err != nil {
			return err
		}
		return tx.InsertImages(ctx, product.ID, []string{"a"})
	})
	require.NoError(t, err)

	var urls []string
	require.NoError(t, db.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Order("id").Pluck("url", &urls).Error)
	assert.Equal(t, []string{"a"}, urls)
}

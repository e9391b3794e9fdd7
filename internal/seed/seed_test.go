package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/apperrors"
	"catalog/internal/database/dbtest"
	"catalog/internal/repositories"
	"catalog/internal/seed"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDeleter struct{}

func (failingDeleter) DeleteAllProducts(context.Context) (*services.DeleteResult, error) {
	return nil, apperrors.Internal(assert.AnError)
}

func TestLoader_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := map[string]repositories.ProductRepository{
		"memory": repositories.NewMemoryProductRepository(),
		"sqlite": repositories.NewGORMProductRepository(dbtest.OpenTestSQLite(t)),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			service := services.NewProductService(repo, nil, logger)
			loader := seed.NewLoader(service, repo, nil, logger)

			_, err := service.CreateProduct(ctx, services.CreateProductInput{Title: "Leftover", Gender: "unisex"})
			require.NoError(t, err)

			// running twice must not trip the unique indexes
			for range [2]struct{}{} {
				msg, err := loader.Run(ctx)
				require.NoError(t, err)
				assert.Equal(t, seed.Message, msg)
			}

			all, err := service.ListProducts(ctx, services.Pagination{Limit: 100})
			require.NoError(t, err)
			want := seed.Products()
			require.Len(t, all, len(want))
			for i := range want {
				assert.Equal(t, want[i].Slug, all[i].Slug)
				assert.Equal(t, want[i].Images, all[i].Images)
			}

			_, err = service.FindByTerm(ctx, "Leftover")
			assert.True(t, apperrors.IsNotFound(err))
		})
	}
}

func TestLoader_RunStopsWhenDeleteFails(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	loader := seed.NewLoader(failingDeleter{}, repo, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := loader.Run(context.Background())

	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	page, err := repo.FindPage(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestProductsAreUnique(t *testing.T) {
	titles := map[string]bool{}
	slugs := map[string]bool{}
	for _, p := range seed.Products() {
		assert.False(t, titles[p.Title], "duplicate title %q", p.Title)
		assert.False(t, slugs[p.Slug], "duplicate slug %q", p.Slug)
		assert.True(t, p.Gender.Valid(), "invalid gender for %q", p.Title)
		titles[p.Title] = true
		slugs[p.Slug] = true
	}
}

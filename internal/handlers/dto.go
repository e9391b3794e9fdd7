package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"
)

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Sizes       []string `json:"sizes" validate:"required"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kids unisex"`
	Tags        []string `json:"tags" validate:"required"`
	Images      []string `json:"images"`
}

func (r CreateProductRequest) toInput() services.CreateProductInput {
	input := services.CreateProductInput{
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Slug:        r.Slug,
		Sizes:       r.Sizes,
		Gender:      models.Gender(r.Gender),
		Tags:        r.Tags,
		Images:      r.Images,
	}
	if r.Stock != nil {
		input.Stock = *r.Stock
	}
	return input
}

// UpdateProductRequest is the body of PATCH /products/:id. Every field is optional.
type UpdateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=men women kids unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

func (r UpdateProductRequest) toPatch() services.ProductPatch {
	patch := services.ProductPatch{
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Slug:        r.Slug,
		Stock:       r.Stock,
		Sizes:       r.Sizes,
		Tags:        r.Tags,
		Images:      r.Images,
	}
	if r.Gender != nil {
		gender := models.Gender(*r.Gender)
		patch.Gender = &gender
	}
	return patch
}

// PaginationQuery is the query string of GET /products.
type PaginationQuery struct {
	Limit  *int `query:"limit" validate:"omitempty,gt=0"`
	Offset *int `query:"offset" validate:"omitempty,gte=0"`
}

func (q PaginationQuery) toPagination() services.Pagination {
	var page services.Pagination
	if q.Limit != nil {
		page.Limit = *q.Limit
	}
	if q.Offset != nil {
		page.Offset = *q.Offset
	}
	return page
}

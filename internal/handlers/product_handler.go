package handlers

import (
	"fmt"
	"log/slog"
	"net/url"

	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the product routes on router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:term", h.HandleFindProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := h.bind(c, &req, c.BodyParser); err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.UserContext(), req.toInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleListProducts returns one page of products.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var query PaginationQuery
	if err := h.bind(c, &query, c.QueryParser); err != nil {
		return err
	}

	products, err := h.service.ListProducts(c.UserContext(), query.toPagination())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleFindProduct resolves a product by ID, slug or title.
func (h *ProductHandler) HandleFindProduct(c *fiber.Ctx) error {
	term, err := url.PathUnescape(c.Params("term"))
	if err != nil {
		return &RequestError{Message: "Invalid search term", Cause: err}
	}

	product, err := h.service.FindByTerm(c.UserContext(), term)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := h.bind(c, &req, c.BodyParser); err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and its images.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}

	affected, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"affected": affected})
}

// bind parses the request with parse and validates the result.
func (h *ProductHandler) bind(c *fiber.Ctx, out any, parse func(any) error) error {
	if err := parse(out); err != nil {
		h.logger.DebugContext(c.UserContext(), "invalid request", slog.Any("error", err))
		return &RequestError{Message: "Invalid request body", Cause: err}
	}
	if err := h.validate.Struct(out); err != nil {
		return newValidationError(err)
	}
	return nil
}

func uuidParam(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if err := uuid.Validate(id); err != nil {
		return "", &RequestError{
			Message: fmt.Sprintf("Validation failed (uuid is expected): %s", id),
			Cause:   err,
		}
	}
	return id, nil
}

package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// A transaction holds the write lock for its whole duration and works on a
// copy of the state that replaces the live state only on success.
type MemoryProductRepository struct {
	mu    *sync.RWMutex
	state *memoryState
	inTx  bool
}

type memoryState struct {
	order       []string
	products    map[string]models.Product
	nextImageID uint
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		mu: &sync.RWMutex{},
		state: &memoryState{
			products:    make(map[string]models.Product),
			nextImageID: 1,
		},
	}
}

func (r *MemoryProductRepository) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func (r *MemoryProductRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

// FindByID returns a product by its ID.
func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	defer r.rlock()()

	product, ok := r.state.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	product = cloneProduct(product)
	return &product, nil
}

// FindBySlugOrTitle returns the first stored product whose slug or title equals term, ignoring case.
func (r *MemoryProductRepository) FindBySlugOrTitle(_ context.Context, term string) (*models.Product, error) {
	defer r.rlock()()

	for _, id := range r.state.order {
		product := r.state.products[id]
		if strings.EqualFold(product.Slug, term) || strings.EqualFold(product.Title, term) {
			product = cloneProduct(product)
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

// FindPage returns products in insertion order.
func (r *MemoryProductRepository) FindPage(_ context.Context, offset, limit int) ([]models.Product, error) {
	defer r.rlock()()

	products := make([]models.Product, 0, min(limit, max(len(r.state.order)-offset, 0)))
	for i := offset; i < len(r.state.order) && len(products) < limit; i++ {
		products = append(products, cloneProduct(r.state.products[r.state.order[i]]))
	}
	return products, nil
}

// Create adds a new product with its images.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	defer r.lock()()

	return r.state.insert(product)
}

// Save replaces the stored fields of an existing product, keeping its images.
func (r *MemoryProductRepository) Save(_ context.Context, product *models.Product) error {
	defer r.lock()()

	stored, ok := r.state.products[product.ID]
	if !ok {
		return ErrNotFound
	}
	if err := r.state.checkUnique(product, product.ID); err != nil {
		return err
	}
	updated := cloneProduct(*product)
	updated.Images = stored.Images
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	r.state.products[product.ID] = updated
	return nil
}

// DeleteImages removes every image of the product.
func (r *MemoryProductRepository) DeleteImages(_ context.Context, productID string) error {
	defer r.lock()()

	product, ok := r.state.products[productID]
	if !ok {
		return nil
	}
	product.Images = nil
	r.state.products[productID] = product
	return nil
}

// InsertImages appends one image per URL to the product.
func (r *MemoryProductRepository) InsertImages(_ context.Context, productID string, urls []string) error {
	defer r.lock()()

	product, ok := r.state.products[productID]
	if !ok {
		return fmt.Errorf("failed to insert images: product %s does not exist", productID)
	}
	for _, img := range models.NewImages(urls) {
		img.ID = r.state.nextImageID
		img.ProductID = productID
		r.state.nextImageID++
		product.Images = append(product.Images, img)
	}
	r.state.products[productID] = product
	return nil
}

// Delete removes a product and its images by the product ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) (int64, error) {
	defer r.lock()()

	if _, ok := r.state.products[id]; !ok {
		return 0, nil
	}
	delete(r.state.products, id)
	for i, stored := range r.state.order {
		if stored == id {
			r.state.order = append(r.state.order[:i], r.state.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// DeleteAll removes every product.
func (r *MemoryProductRepository) DeleteAll(_ context.Context) (int64, error) {
	defer r.lock()()

	affected := int64(len(r.state.products))
	r.state.products = make(map[string]models.Product)
	r.state.order = nil
	return affected, nil
}

// BulkInsert adds all products or none of them.
func (r *MemoryProductRepository) BulkInsert(_ context.Context, products []models.Product) error {
	defer r.lock()()

	work := r.state.clone()
	for i := range products {
		if err := work.insert(&products[i]); err != nil {
			return fmt.Errorf("failed to bulk insert products: %w", err)
		}
	}
	*r.state = *work
	return nil
}

// Transaction runs fn on a private copy of the state and publishes it if fn succeeds.
func (r *MemoryProductRepository) Transaction(_ context.Context, fn func(repo ProductRepository) error) error {
	defer r.lock()()

	tx := &MemoryProductRepository{mu: r.mu, state: r.state.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	*r.state = *tx.state
	return nil
}

func (s *memoryState) insert(product *models.Product) error {
	if _, ok := s.products[product.ID]; ok {
		return &ConflictError{Detail: fmt.Sprintf("Key (id)=(%s) already exists.", product.ID)}
	}
	if err := s.checkUnique(product, product.ID); err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	for i := range product.Images {
		product.Images[i].ID = s.nextImageID
		product.Images[i].ProductID = product.ID
		s.nextImageID++
	}
	s.products[product.ID] = cloneProduct(*product)
	s.order = append(s.order, product.ID)
	return nil
}

// checkUnique reports a conflict if another product already uses the title or slug.
func (s *memoryState) checkUnique(product *models.Product, selfID string) error {
	for id, other := range s.products {
		if id == selfID {
			continue
		}
		if other.Title == product.Title {
			return &ConflictError{Detail: fmt.Sprintf("Key (title)=(%s) already exists.", product.Title)}
		}
		if other.Slug == product.Slug {
			return &ConflictError{Detail: fmt.Sprintf("Key (slug)=(%s) already exists.", product.Slug)}
		}
	}
	return nil
}

func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		order:       append([]string(nil), s.order...),
		products:    make(map[string]models.Product, len(s.products)),
		nextImageID: s.nextImageID,
	}
	for id, p := range s.products {
		c.products[id] = cloneProduct(p)
	}
	return c
}

func cloneProduct(p models.Product) models.Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	p.Tags = append([]string(nil), p.Tags...)
	p.Images = append([]models.ProductImage(nil), p.Images...)
	return p
}

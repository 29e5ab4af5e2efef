package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/monocle-dev/rentals/internal/models"
)

// MemoryStore keeps users and products in process memory with the same
// constraint semantics as the relational schema. Used for local runs and tests.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[uint]models.User
	byEmail  map[string]uint
	products map[uint]models.Product

	nextUserID    uint
	nextProductID uint

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint]models.User),
		byEmail:  make(map[string]uint),
		products: make(map[uint]models.Product),
		now:      time.Now,
	}
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("find user by email: %w: %w", ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("find user by email: %w", ErrNotFound)
	}

	user := s.users[id]
	return &user, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create user: %w: %w", ErrStoreUnavailable, err)
	}

	if err := checkUser(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return nil, fmt.Errorf("create user: duplicate email: %w", ErrConstraintViolation)
	}

	s.nextUserID++
	now := s.now()

	user.ID = s.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Products = nil

	s.users[user.ID] = *user
	s.byEmail[user.Email] = user.ID

	return user, nil
}

func (s *MemoryStore) CreateProduct(ctx context.Context, product *models.Product, ownerID uint) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create product: %w: %w", ErrStoreUnavailable, err)
	}

	product.UserID = ownerID

	if err := checkProduct(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[ownerID]; !ok {
		return nil, fmt.Errorf("create product: unknown owner %d: %w", ownerID, ErrConstraintViolation)
	}

	s.nextProductID++
	now := s.now()

	product.ID = s.nextProductID
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	stored.Categories = slices.Clone(product.Categories)
	s.products[product.ID] = stored

	return product, nil
}

func (s *MemoryStore) FindProductsByOwner(ctx context.Context, ownerID uint) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("find products by owner: %w: %w", ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	products := []models.Product{}
	for _, product := range s.products {
		if product.UserID == ownerID {
			product.Categories = slices.Clone(product.Categories)
			products = append(products, product)
		}
	}

	slices.SortFunc(products, func(a, b models.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return products, nil
}

func (s *MemoryStore) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("find product: %w: %w", ErrStoreUnavailable, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("find product %d: %w", id, ErrNotFound)
	}

	product.Categories = slices.Clone(product.Categories)
	return &product, nil
}

func (s *MemoryStore) DeleteProductByID(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete product: %w: %w", ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}

	delete(s.products, id)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ping: %w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

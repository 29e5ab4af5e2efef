package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/metrics"
	"github.com/monocle-dev/rentals/internal/models"
	"github.com/monocle-dev/rentals/internal/store"
)

type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0,lte=9999999999.99"`
	RentPrice   float64  `json:"rentPrice" validate:"gte=0,lte=9999999999.99"`
	RentType    string   `json:"rentType" validate:"required,renttype"`
	Email       string   `json:"email" validate:"required,email"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,category"`
}

type CreateProductResult struct {
	Success bool
	Message string
	Product *models.Product
}

type ProductService struct {
	store  store.Store
	logger logging.Logger
}

func NewProductService(s store.Store, logger logging.Logger) *ProductService {
	return &ProductService{store: s, logger: logger}
}

// ProductID converts a transport-level identifier into a store key.
func ProductID(id int64) (uint, error) {
	if id <= 0 {
		return 0, NewValidationError("id", "id must be a positive integer")
	}
	return uint(id), nil
}

func (s *ProductService) ListOwnedProducts(ctx context.Context, email string) (products []models.Product, err error) {
	defer func() { metrics.RecordOperation("getUserProducts", Outcome(err)) }()

	owner, err := s.resolveOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	products, err = s.store.FindProductsByOwner(ctx, owner.ID)
	if err != nil {
		logging.FromContext(ctx, s.logger).Error(ctx, "Failed to fetch products", "owner_id", owner.ID, "error", err)
		return nil, failure("Failed to fetch products", err)
	}

	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in CreateProductInput) (result *CreateProductResult, err error) {
	defer func() { metrics.RecordOperation("createProduct", Outcome(err)) }()

	log := logging.FromContext(ctx, s.logger)

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Email = NormalizeEmail(in.Email)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	owner, err := s.resolveOwner(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	product, err := s.store.CreateProduct(ctx, &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       toCents(in.Price),
		RentPrice:   toCents(in.RentPrice),
		RentType:    in.RentType,
		Categories:  uniqueCategories(in.Categories),
	}, owner.ID)
	if err != nil {
		log.Error(ctx, "Failed to create product", "owner_id", owner.ID, "error", err)
		return nil, failure("Failed to create product", err)
	}

	log.Info(ctx, "Product created", "product_id", product.ID, "owner_id", owner.ID)

	return &CreateProductResult{
		Success: true,
		Message: fmt.Sprintf("Product created successfully: %s!", product.Name),
		Product: product,
	}, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (product *models.Product, err error) {
	defer func() { metrics.RecordOperation("getProduct", Outcome(err)) }()

	product, err = s.store.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		logging.FromContext(ctx, s.logger).Error(ctx, "Failed to retrieve product", "product_id", id, "error", err)
		return nil, failure("Failed to retrieve product", err)
	}

	return product, nil
}

// DeleteProduct checks the product exists and then removes it. Deleting a
// missing product is an error, not a no-op.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (deleted bool, err error) {
	defer func() { metrics.RecordOperation("deleteProduct", Outcome(err)) }()

	log := logging.FromContext(ctx, s.logger)

	if _, err := s.store.FindProductByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		log.Error(ctx, "Failed to retrieve product", "product_id", id, "error", err)
		return false, failure("Failed to delete product", err)
	}

	if err := s.store.DeleteProductByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
		}
		log.Error(ctx, "Failed to delete product", "product_id", id, "error", err)
		return false, failure("Failed to delete product", err)
	}

	log.Info(ctx, "Product deleted", "product_id", id)

	return true, nil
}

// resolveOwner looks up the user whose id becomes the product foreign key.
func (s *ProductService) resolveOwner(ctx context.Context, email string) (*models.User, error) {
	email = NormalizeEmail(email)

	if err := validateField("email", email, "required,email"); err != nil {
		return nil, err
	}

	owner, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("owner %q: %w", email, ErrUserNotFound)
		}
		logging.FromContext(ctx, s.logger).Error(ctx, "Database error when fetching owner", "error", err)
		return nil, failure("Failed to resolve product owner", err)
	}

	return owner, nil
}

func uniqueCategories(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))

	for _, c := range in {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// toCents rounds an amount to the two decimals the price columns keep.
func toCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

package store

import (
	"context"
	"fmt"

	"github.com/monocle-dev/rentals/internal/models"
	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify("find user by email", err)
	}

	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := checkUser(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, classify("create user", err)
	}

	return user, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product, ownerID uint) (*models.Product, error) {
	product.UserID = ownerID

	if err := checkProduct(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, classify("create product", err)
	}

	return product, nil
}

func (s *GormStore) FindProductsByOwner(ctx context.Context, ownerID uint) ([]models.Product, error) {
	products := []models.Product{}

	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&products).Error; err != nil {
		return nil, classify("find products by owner", err)
	}

	return products, nil
}

func (s *GormStore) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product

	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, classify("find product", err)
	}

	return &product, nil
}

func (s *GormStore) DeleteProductByID(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)

	if result.Error != nil {
		return classify("delete product", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}

	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return classify("ping", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Package store maps typed entity operations onto the relational backing
// store. Every operation is a single statement; the database arbitrates
// concurrent writers through its unique and foreign-key constraints.
package store

import (
	"context"
	"errors"

	"github.com/monocle-dev/rentals/internal/models"
)

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation means a schema rule rejected the write, such as
	// a duplicate email or an amount the price columns cannot hold.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStoreUnavailable covers transport and connection failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Store is the data-access contract used by the services.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	CreateProduct(ctx context.Context, product *models.Product, ownerID uint) (*models.Product, error)
	FindProductsByOwner(ctx context.Context, ownerID uint) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uint) (*models.Product, error)
	DeleteProductByID(ctx context.Context, id uint) error

	Ping(ctx context.Context) error
}

func checkUser(user *models.User) error {
	if user.FirstName == "" || user.LastName == "" || user.Address == "" ||
		user.PhoneNumber == "" || user.Email == "" || user.Password == "" {
		return ErrConstraintViolation
	}
	return nil
}

func checkProduct(product *models.Product) error {
	if product.Name == "" || product.Description == "" || product.RentType == "" {
		return ErrConstraintViolation
	}
	if product.Price < 0 || product.RentPrice < 0 ||
		product.Price > models.MaxPrice || product.RentPrice > models.MaxPrice {
		return ErrConstraintViolation
	}
	return nil
}

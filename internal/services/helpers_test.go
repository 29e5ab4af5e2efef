package services

import (
	"context"
	"fmt"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/models"
	"github.com/monocle-dev/rentals/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// downStore fails every call the way an unreachable database does.
type downStore struct{}

func (downStore) unavailable(op string) error {
	return fmt.Errorf("%s: %w: dial tcp 127.0.0.1:5432: connection refused", op, store.ErrStoreUnavailable)
}

func (d downStore) FindUserByEmail(context.Context, string) (*models.User, error) {
	return nil, d.unavailable("find user by email")
}
func (d downStore) CreateUser(context.Context, *models.User) (*models.User, error) {
	return nil, d.unavailable("create user")
}
func (d downStore) CreateProduct(context.Context, *models.Product, uint) (*models.Product, error) {
	return nil, d.unavailable("create product")
}
func (d downStore) FindProductsByOwner(context.Context, uint) ([]models.Product, error) {
	return nil, d.unavailable("find products by owner")
}
func (d downStore) FindProductByID(context.Context, uint) (*models.Product, error) {
	return nil, d.unavailable("find product")
}
func (d downStore) DeleteProductByID(context.Context, uint) error {
	return d.unavailable("delete product")
}
func (d downStore) Ping(context.Context) error {
	return d.unavailable("ping")
}

func newServices(s store.Store) (*UserService, *ProductService) {
	return NewUserService(s, logging.Nop{}, WithHashCost(bcrypt.MinCost)),
		NewProductService(s, logging.Nop{})
}

func validRegistration(email string) RegisterInput {
	return RegisterInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Address:     "12 Analytical Row",
		PhoneNumber: "5550001111",
		Email:       email,
		Password:    "engine42",
	}
}

func validProduct(email, name string) CreateProductInput {
	return CreateProductInput{
		Name:        name,
		Description: "Sturdy and dry",
		Price:       250,
		RentPrice:   15,
		RentType:    "per day",
		Email:       email,
		Categories:  []string{"OUTDOOR", "SPORTING GOODS"},
	}
}

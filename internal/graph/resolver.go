// Package graph serves the GraphQL API. Resolvers are thin adapters over the
// services package.
package graph

import (
	"context"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/models"
	"github.com/monocle-dev/rentals/internal/services"
)

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*services.LoginResult, error)
}

type ProductService interface {
	ListOwnedProducts(ctx context.Context, email string) ([]models.Product, error)
	CreateProduct(ctx context.Context, in services.CreateProductInput) (*services.CreateProductResult, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) (bool, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	users    UserService
	products ProductService
	logger   logging.Logger
}

func NewResolver(users UserService, products ProductService, logger logging.Logger) *Resolver {
	return &Resolver{users: users, products: products, logger: logger}
}

func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r, graphql.MaxDepth(8))
}

// Handler serves GraphQL over HTTP POST.
func Handler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

func (r *Resolver) GetUserProducts(ctx context.Context, args struct{ Email string }) ([]*productResolver, error) {
	products, err := r.products.ListOwnedProducts(ctx, args.Email)
	if err != nil {
		return nil, r.fail(ctx, "getUserProducts", err)
	}

	out := make([]*productResolver, len(products))
	for i := range products {
		out[i] = &productResolver{p: &products[i]}
	}

	return out, nil
}

func (r *Resolver) GetProduct(ctx context.Context, args struct{ ID int32 }) (*productResolver, error) {
	id, err := services.ProductID(int64(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "getProduct", err)
	}

	product, err := r.products.GetProduct(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "getProduct", err)
	}

	return &productResolver{p: product}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Data services.RegisterInput }) (*userResolver, error) {
	user, err := r.users.Register(ctx, args.Data)
	if err != nil {
		return nil, r.fail(ctx, "createUser", err)
	}

	return &userResolver{u: user}, nil
}

func (r *Resolver) LoginUser(ctx context.Context, args struct{ Email, Password string }) (*loginResolver, error) {
	res, err := r.users.Authenticate(ctx, args.Email, args.Password)
	if err != nil {
		return nil, r.fail(ctx, "loginUser", err)
	}

	return &loginResolver{res: res}, nil
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Data services.CreateProductInput }) (*createProductResolver, error) {
	res, err := r.products.CreateProduct(ctx, args.Data)
	if err != nil {
		return nil, r.fail(ctx, "createProduct", err)
	}

	return &createProductResolver{res: res}, nil
}

func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID int32 }) (bool, error) {
	id, err := services.ProductID(int64(args.ID))
	if err != nil {
		return false, r.fail(ctx, "deleteProduct", err)
	}

	deleted, err := r.products.DeleteProduct(ctx, id)
	if err != nil {
		return false, r.fail(ctx, "deleteProduct", err)
	}

	return deleted, nil
}

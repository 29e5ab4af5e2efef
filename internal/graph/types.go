package graph

import (
	"github.com/graph-gophers/graphql-go"
	"github.com/monocle-dev/rentals/internal/models"
	"github.com/monocle-dev/rentals/internal/services"
	"github.com/monocle-dev/rentals/internal/types"
)

type userResolver struct {
	u *models.User
}

func (r *userResolver) ID() graphql.ID      { return graphql.ID(types.FormatID(r.u.ID)) }
func (r *userResolver) FirstName() string   { return r.u.FirstName }
func (r *userResolver) LastName() string    { return r.u.LastName }
func (r *userResolver) Address() string     { return r.u.Address }
func (r *userResolver) PhoneNumber() string { return r.u.PhoneNumber }
func (r *userResolver) Email() string       { return r.u.Email }
func (r *userResolver) CreatedAt() string   { return types.FormatTimestamp(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() string   { return types.FormatTimestamp(r.u.UpdatedAt) }

type productResolver struct {
	p *models.Product
}

func (r *productResolver) ID() graphql.ID      { return graphql.ID(types.FormatID(r.p.ID)) }
func (r *productResolver) Name() string        { return r.p.Name }
func (r *productResolver) Description() string { return r.p.Description }
func (r *productResolver) Price() float64      { return r.p.Price }
func (r *productResolver) RentPrice() float64  { return r.p.RentPrice }
func (r *productResolver) RentType() string    { return r.p.RentType }
func (r *productResolver) UserID() graphql.ID  { return graphql.ID(types.FormatID(r.p.UserID)) }
func (r *productResolver) Views() int32        { return int32(r.p.Views) }
func (r *productResolver) CreatedAt() string   { return types.FormatTimestamp(r.p.CreatedAt) }
func (r *productResolver) UpdatedAt() string   { return types.FormatTimestamp(r.p.UpdatedAt) }

func (r *productResolver) Categories() []string {
	if r.p.Categories == nil {
		return []string{}
	}
	return r.p.Categories
}

type loginResolver struct {
	res *services.LoginResult
}

func (r *loginResolver) Success() bool   { return r.res.Success }
func (r *loginResolver) Message() string { return r.res.Message }

type createProductResolver struct {
	res *services.CreateProductResult
}

func (r *createProductResolver) Success() bool   { return r.res.Success }
func (r *createProductResolver) Message() string { return r.res.Message }

func (r *createProductResolver) Product() *productResolver {
	return &productResolver{p: r.res.Product}
}

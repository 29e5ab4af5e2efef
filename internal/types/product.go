package types

import (
	"strconv"
	"time"

	"github.com/monocle-dev/rentals/internal/models"
)

type UserResponse struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type ProductResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	RentPrice   float64  `json:"rentPrice"`
	RentType    string   `json:"rentType"`
	UserID      uint     `json:"userId"`
	Views       int      `json:"views"`
	Categories  []string `json:"categories"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateProductResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// FormatTimestamp renders entity timestamps in the canonical wire form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		CreatedAt:   FormatTimestamp(u.CreatedAt),
		UpdatedAt:   FormatTimestamp(u.UpdatedAt),
	}
}

func NewProductResponse(p *models.Product) ProductResponse {
	categories := []string(p.Categories)
	if categories == nil {
		categories = []string{}
	}

	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		RentPrice:   p.RentPrice,
		RentType:    p.RentType,
		UserID:      p.UserID,
		Views:       p.Views,
		Categories:  categories,
		CreatedAt:   FormatTimestamp(p.CreatedAt),
		UpdatedAt:   FormatTimestamp(p.UpdatedAt),
	}
}

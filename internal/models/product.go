package models

import (
	"time"

	"github.com/lib/pq"
)

// MaxPrice is the largest amount a numeric(12,2) column holds.
const MaxPrice = 9999999999.99

type Product struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	Price       float64        `gorm:"type:numeric(12,2);not null;check:price >= 0"`
	RentPrice   float64        `gorm:"type:numeric(12,2);not null;check:rent_price >= 0"`
	RentType    string         `gorm:"not null"` // "per hour", "per day"
	UserID      uint           `gorm:"not null;index"`
	Views       int            `gorm:"not null;default:0"`
	Categories  pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

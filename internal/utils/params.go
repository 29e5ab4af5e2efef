package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func GetProductID(ctx *gin.Context) (int64, error) {
	productIDStr := ctx.Param("id")

	if productIDStr == "" {
		return 0, errors.New("Product ID not found")
	}

	productID, err := strconv.ParseInt(productIDStr, 10, 64)

	if err != nil {
		return 0, errors.New("Invalid Product ID")
	}

	return productID, nil
}

// GetOwnerEmail returns the :email path segment. gin has already unescaped it.
func GetOwnerEmail(ctx *gin.Context) (string, error) {
	email := strings.TrimSpace(ctx.Param("email"))

	if email == "" {
		return "", errors.New("Owner email not found")
	}

	return email, nil
}

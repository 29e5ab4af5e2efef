package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/services"
	"github.com/monocle-dev/rentals/internal/types"
	"github.com/monocle-dev/rentals/internal/utils"
)

func (h *Handler) ListUserProducts(ctx *gin.Context) {
	email, err := utils.GetOwnerEmail(ctx)

	if err != nil {
		h.fail(ctx, services.NewValidationError("email", "email is required"))
		return
	}

	products, err := h.products.ListOwnedProducts(ctx.Request.Context(), email)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	response := make([]types.ProductResponse, 0, len(products))
	for i := range products {
		response = append(response, types.NewProductResponse(&products[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"products": response})
}

func (h *Handler) CreateProduct(ctx *gin.Context) {
	var body services.CreateProductInput

	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.invalidRequest(ctx)
		return
	}

	result, err := h.products.CreateProduct(ctx.Request.Context(), body)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.CreateProductResponse{
		Success: result.Success,
		Message: result.Message,
		Product: types.NewProductResponse(result.Product),
	})
}

func (h *Handler) GetProduct(ctx *gin.Context) {
	id, err := productIDParam(ctx)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	product, err := h.products.GetProduct(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": types.NewProductResponse(product)})
}

func (h *Handler) DeleteProduct(ctx *gin.Context) {
	id, err := productIDParam(ctx)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	deleted, err := h.products.DeleteProduct(ctx.Request.Context(), id)

	if err != nil {
		h.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func productIDParam(ctx *gin.Context) (uint, error) {
	id, err := utils.GetProductID(ctx)

	if err != nil {
		return 0, services.NewValidationError("id", "id must be a positive integer")
	}

	return services.ProductID(id)
}

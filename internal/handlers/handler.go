package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/models"
	"github.com/monocle-dev/rentals/internal/monitors"
	"github.com/monocle-dev/rentals/internal/services"
	"github.com/monocle-dev/rentals/internal/utils"
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

// Handler holds the dependencies of the REST endpoints.
type Handler struct {
	users    UserService
	products ProductService
	store    monitors.Pinger
	logger   logging.Logger
}

func New(users UserService, products ProductService, store monitors.Pinger, logger logging.Logger) *Handler {
	return &Handler{users: users, products: products, store: store, logger: logger}
}

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConstraint:
		return http.StatusConflict
	case services.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the client-safe message for err.
func (h *Handler) fail(ctx *gin.Context, err error) {
	kind, message := services.Describe(err)

	if kind == services.KindInternal {
		logging.FromContext(ctx.Request.Context(), h.logger).Error(ctx.Request.Context(), "Unexpected handler error", "error", err)
	}

	h.respondError(ctx, statusFor(kind), message, kind)
}

// invalidRequest answers a body that could not be decoded at all.
func (h *Handler) invalidRequest(ctx *gin.Context) {
	h.respondError(ctx, http.StatusBadRequest, "Invalid request", services.KindValidation)
}

func (h *Handler) respondError(ctx *gin.Context, status int, message string, kind services.Kind) {
	body := gin.H{"error": message, "code": kind}

	if requestID := utils.GetRequestID(ctx); requestID != "" {
		body["request_id"] = requestID
	}

	ctx.JSON(status, body)
}

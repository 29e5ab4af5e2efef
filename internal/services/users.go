// Package services implements the API operations on top of the store:
// input validation, owner resolution and translation of store failures into
// client-facing errors.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/metrics"
	"github.com/monocle-dev/rentals/internal/models"
	"github.com/monocle-dev/rentals/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid email or password"

type RegisterInput struct {
	FirstName   string `json:"firstName" validate:"required,min=2"`
	LastName    string `json:"lastName" validate:"required,min=2"`
	Address     string `json:"address" validate:"required,min=5"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=10"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
}

// LoginResult is a normal, representable outcome: bad credentials are not errors.
type LoginResult struct {
	Success bool
	Message string
}

type UserService struct {
	store     store.Store
	logger    logging.Logger
	hashCost  int
	dummyHash []byte
}

type UserOption func(*UserService)

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) UserOption {
	return func(s *UserService) {
		s.hashCost = cost
	}
}

func NewUserService(s store.Store, logger logging.Logger, opts ...UserOption) *UserService {
	svc := &UserService{
		store:    s,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}

	for _, opt := range opts {
		opt(svc)
	}

	// Compared against when the email is unknown so both paths cost a bcrypt round.
	svc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("rentals-dummy-password"), svc.hashCost)

	return svc
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (user *models.User, err error) {
	defer func() { metrics.RecordOperation("createUser", Outcome(err)) }()

	log := logging.FromContext(ctx, s.logger)

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Address = strings.TrimSpace(in.Address)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Email = NormalizeEmail(in.Email)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		log.Error(ctx, "Failed to hash password", "error", err)
		return nil, failure("Failed to create user", err)
	}

	created, err := s.store.CreateUser(ctx, &models.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Password:    string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, store.ErrConstraintViolation) {
			log.Warn(ctx, "User registration rejected", "error", err)
		} else {
			log.Error(ctx, "Failed to create user", "error", err)
		}
		return nil, failure("Failed to create user", err)
	}

	log.Info(ctx, "User registered", "user_id", created.ID)

	return created, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (result *LoginResult, err error) {
	defer func() { metrics.RecordOperation("loginUser", Outcome(err)) }()

	user, err := s.store.FindUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return &LoginResult{Success: false, Message: invalidCredentials}, nil
		}

		logging.FromContext(ctx, s.logger).Error(ctx, "Database error when fetching user", "error", err)
		return nil, failure("Failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return &LoginResult{Success: false, Message: invalidCredentials}, nil
	}

	return &LoginResult{
		Success: true,
		Message: fmt.Sprintf("Welcome back, %s!", user.FirstName),
	}, nil
}

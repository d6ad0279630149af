package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/utafrali/demostore/pkg/errors"
	"github.com/utafrali/demostore/pkg/pagination"

	"github.com/utafrali/demostore/internal/auth"
	"github.com/utafrali/demostore/internal/domain"
	"github.com/utafrali/demostore/internal/repository"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// UserService implements the business logic for user, address, and auth
// operations.
type UserService struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	tokens      *auth.TokenManager
	logger      *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// --- Input types ---

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *int
}

// UpdateUserInput holds the parameters for a partial user update. Nil fields
// leave the stored value unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Age   *int
}

// RegisterInput holds the parameters for registering a user.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Age             *int
}

// CreateAddressInput holds the parameters for creating an address.
type CreateAddressInput struct {
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	IsPrimary bool
}

// --- User operations ---

// ListUsers returns the skip/limit window over the user store, then filters
// by a case-insensitive name substring. The filter applies after the window
// is taken, so a page can come back shorter than the limit even when more
// matches exist beyond it; clients depend on this ordering.
func (s *UserService) ListUsers(ctx context.Context, params pagination.Params, search string) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	start, end := params.Window(len(users))
	page := users[start:end]

	if search == "" {
		return page, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]domain.User, 0, len(page))
	for _, u := range page {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// GetUser retrieves a user by identifier.
func (s *UserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// CreateUser creates a new user, stamping the creation time.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Age:       input.Age,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created",
		slog.Int("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// UpdateUser merges the fields present in the input over the stored user.
func (s *UserService) UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Age != nil {
		user.Age = input.Age
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.InfoContext(ctx, "user updated", slog.Int("user_id", id))

	return user, nil
}

// DeleteUser removes a user. Addresses and reviews referencing the user are
// left in place, matching the fixture API.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("user", id)
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.InfoContext(ctx, "user deleted", slog.Int("user_id", id))

	return nil
}

// --- Auth operations ---

// Login looks up a user by email and fabricates an access token. The
// password is accepted but never verified; the demo API has no credential
// store for users created outside registration.
func (s *UserService) Login(ctx context.Context, email, _ string) (*domain.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.Int("user_id", user.ID))

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		ExpiresIn:   int(s.tokens.Expiry().Seconds()),
	}, nil
}

// Register creates a user after checking that the two password fields match
// and that the email is not already registered. Both violations are reported
// as bad requests, before any store mutation.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Password != input.ConfirmPassword {
		return nil, apperrors.InvalidInput("passwords do not match")
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.AlreadyExists("user", "email", input.Email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Age:          input.Age,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.Int("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// --- Address operations ---

// CreateAddress creates an address for an existing user. A missing user fails
// the whole operation before any mutation.
func (s *UserService) CreateAddress(ctx context.Context, userID int, input CreateAddressInput) (*domain.Address, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	address := &domain.Address{
		UserID:    userID,
		Street:    input.Street,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Country:   input.Country,
		IsPrimary: input.IsPrimary,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	s.logger.InfoContext(ctx, "address created",
		slog.Int("address_id", address.ID),
		slog.Int("user_id", userID),
	)

	return address, nil
}

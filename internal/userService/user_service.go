package user

import (
	"errors"
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// UserService defines account lookup and the credential flows that back
// the identity context.
type UserService struct {
	repo   repository.AuctionStore
	tokens *auth.TokenService
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.AuctionStore, tokens *auth.TokenService) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// GetUser returns a user with the products they sell and the bids they
// placed.
func (s *UserService) GetUser(userID string) (model.UserDetail, error) {
	detail, err := s.repo.UserDetailByID(userID)
	if err != nil {
		return model.UserDetail{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return detail, nil
}

// Register creates an account with an argon2-hashed password and returns
// the user plus a signed token. Registered accounts are never admins.
func (s *UserService) Register(username, email, password string) (model.User, string, error) {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return model.User{}, "", auctionerrors.NewValidationError(missing...)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := model.User{
		ID:           utils.GenerateID(),
		Username:     username,
		Email:        email,
		Admin:        false,
		PasswordHash: hash,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to register user: %w", err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to register user: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user plus a signed token. An
// unknown email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (model.User, string, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return model.User{}, "", auctionerrors.NewValidationError(missing...)
	}

	user, err := s.repo.UserByEmail(email)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return model.User{}, "", fmt.Errorf("service: login: %w", auctionerrors.ErrBadPassword)
		}
		return model.User{}, "", fmt.Errorf("service: login: %w", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return model.User{}, "", fmt.Errorf("service: login: %w", auctionerrors.ErrBadPassword)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: login: %w", err)
	}
	return user, token, nil
}

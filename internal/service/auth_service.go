package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-identity-service/internal/model"
	"go-identity-service/internal/validator"
)

type userStore interface {
	CountByEmail(ctx context.Context, email string) (int, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Create(ctx context.Context, u model.User) error
}

type tokenIssuer interface {
	Issue(userID string, email string) (string, error)
}

type AuthService struct {
	users      userStore
	tokens     tokenIssuer
	bcryptCost int
}

func NewAuthService(users userStore, tokens tokenIssuer, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = 12
	}

	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup validates, hashes, checks for an existing email and inserts. The
// pre-check gives the common duplicate a clean answer; the unique constraint
// (surfaced by the store as ErrDuplicateEmail) closes the race between
// concurrent signups.
func (s *AuthService) Signup(ctx context.Context, name string, email string, password string, confirm string) (model.UserSummary, error) {
	if err := validator.ValidateSignup(name, email, password, confirm); err != nil {
		return model.UserSummary{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return model.UserSummary{}, fmt.Errorf("hash password: %w", err)
	}

	count, err := s.users.CountByEmail(ctx, email)
	if err != nil {
		return model.UserSummary{}, fmt.Errorf("check existing email: %w", err)
	}
	if count > 0 {
		return model.UserSummary{}, model.ErrDuplicateEmail
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.UserSummary{}, model.ErrDuplicateEmail
		}
		return model.UserSummary{}, fmt.Errorf("create user: %w", err)
	}

	return model.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// Login returns the identical ErrInvalidCredentials for an unknown email and
// a wrong password so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	if err := validator.ValidateLogin(email, password); err != nil {
		return model.LoginResult{}, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.LoginResult{}, model.ErrInvalidCredentials
		}
		return model.LoginResult{}, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.LoginResult{}, model.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return model.LoginResult{}, model.ErrTokenSigning
	}

	return model.LoginResult{Token: signed, UserID: user.ID, Email: user.Email}, nil
}

func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (model.UserSummary, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.UserSummary{}, model.ErrUserNotFound
		}
		return model.UserSummary{}, fmt.Errorf("look up user: %w", err)
	}

	return model.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

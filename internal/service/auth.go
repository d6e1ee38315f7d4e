package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zenathia/zenathia-web/internal/crypto"
	"github.com/zenathia/zenathia-web/internal/model"
	"github.com/zenathia/zenathia-web/internal/repository"
)

// Validation and authentication errors carry the user-facing flash
// message; anything else that comes out of this package is a store
// fault and must not be shown to the client verbatim.
var (
	ErrFieldsRequired      = errors.New("All fields are required!")
	ErrPasswordMismatch    = errors.New("Passwords do not match!")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters long!")
	ErrEmailTaken          = errors.New("Email already registered! Please login.")
	ErrCredentialsRequired = errors.New("Email and password are required!")
	ErrInvalidCredentials  = errors.New("Invalid email or password!")
)

const minPasswordLen = 6

// UserStore is the persistence collaborator for account operations.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService handles registration, credential verification, and
// current-user lookup.
type AuthService struct {
	store UserStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// Register validates the registration form and creates the account.
// Validation short-circuits on the first failure and leaves no partial
// state behind. A successful registration does not log the user in.
func (s *AuthService) Register(ctx context.Context, form model.RegisterForm) error {
	name := strings.TrimSpace(form.Name)
	email := normalizeEmail(form.Email)

	if name == "" || email == "" || form.Password == "" {
		return ErrFieldsRequired
	}
	if form.Password != form.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(form.Password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}

	hash, err := crypto.HashPassword(form.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.store.Create(ctx, user); err != nil {
		// Lost the race against a concurrent registration; the unique
		// constraint is the authoritative check.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login verifies the credentials and returns the session principal.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, form model.LoginForm) (model.SessionUser, error) {
	email := normalizeEmail(form.Email)

	if email == "" || form.Password == "" {
		return model.SessionUser{}, ErrCredentialsRequired
	}

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.SessionUser{}, ErrInvalidCredentials
		}
		return model.SessionUser{}, err
	}

	match, err := crypto.VerifyPassword(form.Password, user.PasswordHash)
	if err != nil {
		return model.SessionUser{}, err
	}
	if !match {
		return model.SessionUser{}, ErrInvalidCredentials
	}

	return model.SessionUser{ID: user.ID, Name: user.Name}, nil
}

// CurrentUser fetches the full record for an authenticated session.
// repository.ErrUserNotFound means the account was deleted out-of-band
// and the caller should clear the session.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.store.GetByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

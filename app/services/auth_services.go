package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/pkg/apperror"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/bind"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgPasswordTooLong    = "The password must not exceed 72 bytes."
)

// TokenIssuer signs bearer tokens. *auth.Tokens implements it.
type TokenIssuer interface {
	Issue(p auth.Principal) (string, time.Time, error)
}

type RegisterInput struct {
	Fullname string `json:"fullname" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,min=5,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Account   models.Account
}

// AuthService registers and logs in accounts of a single kind. Users and
// hosts each get their own instance over their own repository.
type AuthService struct {
	kind     auth.Kind
	accounts repositories.AccountRepository
	tokens   TokenIssuer
}

func NewAuthService(kind auth.Kind, accounts repositories.AccountRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{kind: kind, accounts: accounts, tokens: tokens}
}

func (s *AuthService) Kind() auth.Kind { return s.kind }

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.Fullname = strings.TrimSpace(in.Fullname)
	errs := bind.Struct(in)
	if _, seen := errs["password"]; !seen && len(in.Password) > auth.MaxPasswordBytes {
		errs["password"] = msgPasswordTooLong
	}
	if len(errs) > 0 {
		return AuthResult{}, apperror.ValidationFields(errs)
	}

	hash, err := auth.HashPassword(in.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return AuthResult{}, apperror.ValidationFields(map[string]string{"password": msgPasswordTooLong})
	}
	if err != nil {
		return AuthResult{}, apperror.Internal("Server error", err)
	}

	account := models.Account{
		Fullname:     in.Fullname,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, &account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			metrics.RecordAuthAttempt(string(s.kind), "conflict")
			return AuthResult{}, apperror.Conflict(s.existsMessage())
		}
		return AuthResult{}, apperror.Internal("Server error", err)
	}

	metrics.RecordAuthAttempt(string(s.kind), "registered")
	return s.issue(account)
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if errs := bind.Struct(in); len(errs) > 0 {
		return AuthResult{}, apperror.ValidationFields(errs)
	}

	account, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.RecordAuthAttempt(string(s.kind), "failure")
			return AuthResult{}, apperror.Unauthorized(msgInvalidCredentials)
		}
		return AuthResult{}, apperror.Internal("Server error", err)
	}

	if !auth.CheckPassword(account.PasswordHash, in.Password) {
		metrics.RecordAuthAttempt(string(s.kind), "failure")
		return AuthResult{}, apperror.Unauthorized(msgInvalidCredentials)
	}

	metrics.RecordAuthAttempt(string(s.kind), "success")
	return s.issue(account)
}

func (s *AuthService) issue(account models.Account) (AuthResult, error) {
	token, exp, err := s.tokens.Issue(auth.Principal{ID: account.ID, Email: account.Email, Kind: s.kind})
	if err != nil {
		return AuthResult{}, apperror.Internal("Server error", fmt.Errorf("issue token: %w", err))
	}
	return AuthResult{Token: token, ExpiresAt: exp, Account: account}, nil
}

func (s *AuthService) existsMessage() string {
	if s.kind == auth.KindHost {
		return "Admin already exists"
	}
	return "User already exists"
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

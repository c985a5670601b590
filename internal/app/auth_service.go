package app

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobconnect/internal/model"
	"jobconnect/pkg/token"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidToken      = errors.New("invalid bearer token")
)

type AuthService struct {
	users UserStore
	cache TokenCache
}

// NewAuthService wires the auth gate. cache may be nil; resolution then goes
// straight to the user store on every request.
func NewAuthService(users UserStore, cache TokenCache) *AuthService {
	return &AuthService{users: users, cache: cache}
}

// Login verifies the credentials and returns the user's current token,
// generating and persisting one on first successful login. Repeating the
// call returns the same token until an explicit refresh.
func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrIncorrectPassword
	}

	if user.Token != nil && *user.Token != "" {
		return *user.Token, nil
	}

	fresh := token.New()
	if err := s.users.SaveToken(user.ID, fresh); err != nil {
		return "", err
	}
	return fresh, nil
}

// Refresh always issues a brand-new token. The previous token stops
// authenticating immediately: the user row holds exactly one token and the
// cache entry for the old one is dropped.
func (s *AuthService) Refresh(user *model.User) (string, error) {
	if user == nil {
		return "", ErrInvalidInput
	}

	fresh := token.New()
	if err := s.users.SaveToken(user.ID, fresh); err != nil {
		return "", err
	}

	if s.cache != nil && user.Token != nil && *user.Token != "" {
		_ = s.cache.Delete(context.Background(), *user.Token)
	}

	user.Token = &fresh
	return fresh, nil
}

// ResolveToken maps a raw bearer credential to its owner. Every failure mode
// (wrong prefix, unknown token, store error) collapses into ErrInvalidToken
// so the response never reveals which check failed.
func (s *AuthService) ResolveToken(ctx context.Context, raw string) (*model.User, error) {
	if !token.HasPrefix(raw) {
		return nil, ErrInvalidToken
	}

	if s.cache != nil {
		if user, ok, err := s.cache.Get(ctx, raw); err == nil && ok {
			return user, nil
		}
	}

	user, err := s.users.GetByToken(raw)
	if err != nil || user == nil {
		return nil, ErrInvalidToken
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, raw, user)
	}
	return user, nil
}

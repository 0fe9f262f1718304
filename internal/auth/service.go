// internal/auth/service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aviato-app/aviato-backend/internal/availability"
	"github.com/aviato-app/aviato-backend/internal/chat"
	"github.com/aviato-app/aviato-backend/internal/common/utils"
	"github.com/aviato-app/aviato-backend/internal/config"
	"github.com/aviato-app/aviato-backend/internal/session"
	"github.com/aviato-app/aviato-backend/internal/users"
)

// Service manages simulated sessions. Credentials are accepted as
// given: any well-formed login or signup succeeds, which keeps the
// whole flow local while exercising the real token plumbing.
type Service interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*users.User, error)
	ValidateToken(token string) (*utils.JWTClaims, error)
}

type service struct {
	repo    users.Repository
	chats   chat.Service
	session *session.Manager
	cfg     *config.Config
}

func NewService(repo users.Repository, chats chat.Service, sessionManager *session.Manager, cfg *config.Config) Service {
	return &service{
		repo:    repo,
		chats:   chats,
		session: sessionManager,
		cfg:     cfg,
	}
}

// Login signs the caller in as the session user. The profile is built
// fresh each time, the starter conversations are installed, and an
// access token is issued.
func (s *service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		ID:             SessionUserID,
		Name:           "You",
		Email:          email,
		Location:       "San Francisco, CA",
		Vibe:           "Here for good conversations",
		PasswordHash:   string(hash),
		Selections:     []string{},
		ApprovalRating: s.cfg.DefaultApproval,
		ReviewRating:   5.0,
		Reviews:        []users.Review{},
		Availability:   availability.NewOnline(),
	}

	if err := s.upsertUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.session.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.chats.StartSession(ctx, user.ID)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Signup registers a brand new profile with empty selections and the
// default approval rating, then signs it in.
func (s *service) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		ID:             "user-" + uuid.NewString(),
		Name:           name,
		Email:          email,
		Location:       "San Francisco, CA",
		Vibe:           "New here, say hi!",
		PasswordHash:   string(hash),
		Selections:     []string{},
		ApprovalRating: s.cfg.DefaultApproval,
		ReviewRating:   5.0,
		Reviews:        []users.Review{},
		Availability:   availability.NewOnline(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.session.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.chats.StartSession(ctx, user.ID)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Logout ends the session and drops its conversations. Registered
// users stay on record so a later signup's profile survives.
func (s *service) Logout(ctx context.Context) error {
	s.chats.EndSession(ctx)
	return s.session.ClearCurrentUser(ctx)
}

func (s *service) CurrentUser(ctx context.Context) (*users.User, error) {
	id := s.session.CurrentUserID()
	if id == "" {
		return nil, users.ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ValidateToken(token string) (*utils.JWTClaims, error) {
	return utils.ValidateJWT(token, s.cfg.JWTSecret)
}

func (s *service) upsertUser(ctx context.Context, user *users.User) error {
	err := s.repo.Create(ctx, user)
	if err == nil {
		return nil
	}
	if !errors.Is(err, users.ErrUserExists) {
		return fmt.Errorf("failed to create session user: %w", err)
	}

	// Refresh the existing record in place
	_, err = s.repo.Update(ctx, user.ID, func(u *users.User) error {
		*u = *user
		return nil
	})
	return err
}

func (s *service) issueToken(user *users.User) (string, error) {
	now := time.Now()

	token, err := utils.GenerateJWT(&utils.JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ExpiresAt: now.Add(s.cfg.AccessTokenExpiry).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    "aviato",
	}, s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

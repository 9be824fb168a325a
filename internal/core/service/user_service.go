package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/publishing-api/internal/api/metrics"
	"github.com/inkwell/publishing-api/internal/core/auth"
	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// UserService implements registration, login, and profile management.
type UserService struct {
	repo     ports.UserRepository
	tokens   *auth.TokenIssuer
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens *auth.TokenIssuer, activity ports.ActivityRecorder, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, activity: activity, logger: logger}
}

// Register creates an account, storing only a bcrypt hash of the password.
func (s *UserService) Register(ctx context.Context, username, password, displayName string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityUser,
		EntityID:   created.ID,
		Action:     domain.ActionRegistered,
		ActorID:    created.ID,
		OccurredAt: now,
	})
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return created.Public(), nil
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords both yield ErrUnauthorized so the two cases are not
// distinguishable from outside. Store failures pass through untouched so a
// timeout stays retryable instead of reading as bad credentials.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrUnauthorized
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}

	return token, user.Public(), nil
}

// GetProfile returns the public fields of a user.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdateProfile applies a partial profile update. Only the account owner may
// change its own profile.
func (s *UserService) UpdateProfile(ctx context.Context, requesterID, targetID string, input ports.UpdateProfileInput) (*domain.User, error) {
	if err := domain.AuthorizeOwner(requesterID, targetID); err != nil {
		return nil, err
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	displayName := target.DisplayName
	if input.DisplayName != nil {
		displayName = *input.DisplayName
	}

	updated, err := s.repo.UpdateProfile(ctx, targetID, displayName)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityUser,
		EntityID:   targetID,
		Action:     domain.ActionUpdated,
		ActorID:    requesterID,
		OccurredAt: time.Now().UTC(),
	})

	return updated.Public(), nil
}

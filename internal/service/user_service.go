package service

import (
	"context"
	"errors"
	"fmt"

	"sessionauth/internal/cache"
	"sessionauth/internal/credential"
	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/repository"
)

// UserService exposes the operations an authenticated user performs on
// their own account.
type UserService interface {
	UpdateProfile(ctx context.Context, userID uint, firstName, lastName string) error
	// ChangePassword checks oldPassword before validating newPassword, so a
	// caller without the current password learns nothing about the rules.
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

type userService struct {
	repo   repository.UserRepository
	hasher credential.Hasher
	cache  userCache
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, hasher credential.Hasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: userCache{cache: cache}}
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, firstName, lastName string) error {
	if !credential.IsValidName(firstName) || !credential.IsValidName(lastName) {
		return apperrors.ErrInvalidProfileName
	}
	if err := s.repo.UpdateName(ctx, userID, firstName, lastName); err != nil {
		return s.storageError("update name", err)
	}
	s.cache.evict(ctx, userID)
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	// the cached projection carries no hash
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return s.storageError("find user", err)
	}

	if !credential.VerifyPassword(user.PasswordHash, oldPassword) {
		return apperrors.ErrOldPasswordIncorrect
	}
	if !credential.IsValidPassword(newPassword) {
		return apperrors.ErrWeakNewPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return s.storageError("update password", err)
	}
	s.cache.evict(ctx, userID)
	return nil
}

// storageError maps a vanished user row to an expired session: the
// session outlived its owner.
func (s *userService) storageError(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrSessionExpired
	}
	return fmt.Errorf("%s: %w", op, err)
}

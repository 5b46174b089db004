package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sessionauth/internal/cache"
	"sessionauth/internal/credential"
	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/model"
	"sessionauth/internal/repository"
)

// SessionTTL is how long a session stays valid after login or registration.
const SessionTTL = 24 * time.Hour

// SessionService creates, validates and invalidates browser sessions.
type SessionService interface {
	// New builds an unsaved session for userID with a fresh token.
	New(userID uint) (*model.Session, error)
	Create(ctx context.Context, userID uint) (*model.Session, error)
	// Validate returns the owner of a live session, or ErrSessionExpired
	// when no unexpired row matches sessionID.
	Validate(ctx context.Context, sessionID string) (*model.User, error)
	Invalidate(ctx context.Context, sessionID string) error
}

type sessionService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	cache    userCache
	ttl      time.Duration
	clock    Clock
}

// NewSessionService creates a session service. A zero ttl means SessionTTL;
// a nil cache disables user projection caching.
func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository, cache *cache.Client, ttl time.Duration, clock Clock) SessionService {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &sessionService{
		sessions: sessions,
		users:    users,
		cache:    userCache{cache: cache},
		ttl:      ttl,
		clock:    clock,
	}
}

func (s *sessionService) New(userID uint) (*model.Session, error) {
	id, err := credential.GenerateSessionID()
	if err != nil {
		return nil, err
	}
	return &model.Session{
		SessionID: id,
		UserID:    userID,
		ExpiresAt: s.clock.now().Add(s.ttl),
	}, nil
}

func (s *sessionService) Create(ctx context.Context, userID uint) (*model.Session, error) {
	session, err := s.New(userID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Validate(ctx context.Context, sessionID string) (*model.User, error) {
	session, err := s.sessions.FindLive(ctx, sessionID, s.clock.now())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	if user, ok := s.cache.get(ctx, session.UserID); ok {
		return user, nil
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("find session user: %w", err)
	}
	s.cache.set(ctx, user)
	return user, nil
}

// Invalidate deletes the session row so a captured cookie stops working
// immediately. Deleting an unknown session is not an error.
func (s *sessionService) Invalidate(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

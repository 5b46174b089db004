package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sessionauth/internal/model"
)

// SessionRepository defines session persistence operations. Lookups take
// the current time so rows past expires_at read as absent.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindLive(ctx context.Context, sessionID string, now time.Time) (*model.Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(session).Error)
}

func (r *sessionRepository) FindLive(ctx context.Context, sessionID string, now time.Time) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", sessionID, now).
		First(&session).Error
	if err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.Session{}).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.Session{})
	return res.RowsAffected, res.Error
}

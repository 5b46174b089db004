package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sessionauth/internal/model"
)

// CaptchaRepository defines captcha challenge persistence operations.
type CaptchaRepository interface {
	Create(ctx context.Context, captcha *model.Captcha) error
	FindLive(ctx context.Context, token string, now time.Time) (*model.Captcha, error)
	// Claim deletes the live challenge (token, code) and reports whether
	// this call was the one that removed it. Of several concurrent claims
	// for the same challenge at most one returns true.
	Claim(ctx context.Context, token, code string, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type captchaRepository struct {
	db *gorm.DB
}

// NewCaptchaRepository creates a new captcha repository.
func NewCaptchaRepository(db *gorm.DB) CaptchaRepository {
	return &captchaRepository{db: db}
}

func (r *captchaRepository) Create(ctx context.Context, captcha *model.Captcha) error {
	return translate(r.db.WithContext(ctx).Create(captcha).Error)
}

func (r *captchaRepository) FindLive(ctx context.Context, token string, now time.Time) (*model.Captcha, error) {
	var captcha model.Captcha
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&captcha).Error
	if err != nil {
		return nil, translate(err)
	}
	return &captcha, nil
}

func (r *captchaRepository) Claim(ctx context.Context, token, code string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("token = ? AND code = ? AND expires_at > ?", token, code, now).
		Delete(&model.Captcha{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *captchaRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.Captcha{})
	return res.RowsAffected, res.Error
}

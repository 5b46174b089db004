package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sessionauth/internal/captcha"
	"sessionauth/internal/credential"
	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/model"
	"sessionauth/internal/repository"
)

const (
	// CaptchaTTL is how long an issued challenge stays answerable.
	CaptchaTTL = 5 * time.Minute

	captchaCodeLength = 5
)

// Challenge is a freshly issued captcha.
type Challenge struct {
	Token     string
	Image     []byte
	ExpiresAt time.Time
}

// CaptchaService issues and verifies human-verification challenges.
type CaptchaService interface {
	Issue(ctx context.Context) (*Challenge, error)
	// Verify consumes the challenge behind token when code matches it
	// (case-insensitively). A consumed or expired token fails with
	// ErrCaptchaExpired; a wrong code leaves the challenge live.
	Verify(ctx context.Context, token, code string) error
}

type captchaService struct {
	captchas repository.CaptchaRepository
	renderer *captcha.Renderer
	ttl      time.Duration
	clock    Clock
	log      *slog.Logger
}

// NewCaptchaService creates a captcha service. A zero ttl means CaptchaTTL.
func NewCaptchaService(captchas repository.CaptchaRepository, ttl time.Duration, clock Clock, log *slog.Logger) CaptchaService {
	if ttl <= 0 {
		ttl = CaptchaTTL
	}
	return &captchaService{
		captchas: captchas,
		renderer: captcha.NewRenderer(),
		ttl:      ttl,
		clock:    clock,
		log:      log,
	}
}

// Issue persists a new challenge and opportunistically purges expired ones.
func (s *captchaService) Issue(ctx context.Context) (*Challenge, error) {
	code, err := credential.GenerateRandomCode(captchaCodeLength)
	if err != nil {
		return nil, err
	}
	token, err := credential.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	row := &model.Captcha{Token: token, Code: code, ExpiresAt: now.Add(s.ttl)}
	if err := s.captchas.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("store captcha: %w", err)
	}

	if purged, err := s.captchas.DeleteExpired(ctx, now); err != nil {
		s.log.WarnContext(ctx, "purge expired captchas", "error", err)
	} else if purged > 0 {
		s.log.DebugContext(ctx, "purged expired captchas", "count", purged)
	}

	return &Challenge{
		Token:     token,
		Image:     s.renderer.Render(code),
		ExpiresAt: row.ExpiresAt,
	}, nil
}

func (s *captchaService) Verify(ctx context.Context, token, code string) error {
	if token == "" || code == "" {
		return apperrors.ErrCaptchaMissing
	}

	now := s.clock.now()
	row, err := s.captchas.FindLive(ctx, token, now)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.ErrCaptchaExpired
	}
	if err != nil {
		return fmt.Errorf("find captcha: %w", err)
	}

	if !strings.EqualFold(row.Code, code) {
		return apperrors.ErrCaptchaMismatch
	}

	claimed, err := s.captchas.Claim(ctx, token, row.Code, now)
	if err != nil {
		return fmt.Errorf("claim captcha: %w", err)
	}
	if !claimed {
		// a concurrent request consumed it between lookup and claim
		return apperrors.ErrCaptchaExpired
	}
	return nil
}

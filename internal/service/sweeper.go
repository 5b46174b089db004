package service

import (
	"context"
	"log/slog"
	"time"

	"sessionauth/internal/repository"
)

// Sweeper deletes expired sessions and captcha challenges. Expired rows
// are already inert; sweeping only reclaims storage.
type Sweeper struct {
	sessions repository.SessionRepository
	captchas repository.CaptchaRepository
	clock    Clock
	log      *slog.Logger
}

// SweepResult counts the rows removed by one pass.
type SweepResult struct {
	Sessions int64
	Captchas int64
}

// NewSweeper creates a sweeper.
func NewSweeper(sessions repository.SessionRepository, captchas repository.CaptchaRepository, clock Clock, log *slog.Logger) *Sweeper {
	return &Sweeper{sessions: sessions, captchas: captchas, clock: clock, log: log}
}

// Sweep runs a single pass. Both tables are attempted even if one fails.
func (s *Sweeper) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	now := s.clock.now()

	sessions, sessErr := s.sessions.DeleteExpired(ctx, now)
	res.Sessions = sessions
	captchas, capErr := s.captchas.DeleteExpired(ctx, now)
	res.Captchas = captchas

	if sessErr != nil {
		return res, sessErr
	}
	return res, capErr
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := s.Sweep(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "sweep expired rows", "error", err)
				continue
			}
			if res.Sessions > 0 || res.Captchas > 0 {
				s.log.InfoContext(ctx, "swept expired rows", "sessions", res.Sessions, "captchas", res.Captchas)
			}
		}
	}
}

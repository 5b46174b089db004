package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sessionauth/internal/logging"
)

func TestSweeper_Sweep(t *testing.T) {
	sessions := new(MockSessionRepository)
	captchas := new(MockCaptchaRepository)
	sessions.On("DeleteExpired", mock.Anything, testNow).Return(int64(3), nil)
	captchas.On("DeleteExpired", mock.Anything, testNow).Return(int64(5), nil)

	res, err := NewSweeper(sessions, captchas, fixedClock(), logging.Discard()).Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, SweepResult{Sessions: 3, Captchas: 5}, res)
}

func TestSweeper_SweepContinuesAfterSessionError(t *testing.T) {
	sessions := new(MockSessionRepository)
	captchas := new(MockCaptchaRepository)
	sessions.On("DeleteExpired", mock.Anything, testNow).Return(int64(0), errors.New("db down"))
	captchas.On("DeleteExpired", mock.Anything, testNow).Return(int64(2), nil)

	res, err := NewSweeper(sessions, captchas, fixedClock(), logging.Discard()).Sweep(context.Background())

	assert.Error(t, err)
	assert.Equal(t, int64(2), res.Captchas)
	captchas.AssertExpectations(t)
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	sessions := new(MockSessionRepository)
	captchas := new(MockCaptchaRepository)
	var swept atomic.Bool
	sessions.On("DeleteExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
	captchas.On("DeleteExpired", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { swept.Store(true) }).
		Return(int64(1), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewSweeper(sessions, captchas, fixedClock(), logging.Discard()).Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, swept.Load, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

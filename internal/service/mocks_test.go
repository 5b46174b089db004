package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sessionauth/internal/model"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() Clock {
	return func() time.Time { return testNow }
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateWithSession(ctx context.Context, user *model.User, session *model.Session) error {
	args := m.Called(ctx, user, session)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id uint, firstName, lastName string) error {
	args := m.Called(ctx, id, firstName, lastName)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindLive(ctx context.Context, sessionID string, now time.Time) (*model.Session, error) {
	args := m.Called(ctx, sessionID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockCaptchaRepository is a mock implementation of CaptchaRepository.
type MockCaptchaRepository struct {
	mock.Mock
}

func (m *MockCaptchaRepository) Create(ctx context.Context, captcha *model.Captcha) error {
	args := m.Called(ctx, captcha)
	return args.Error(0)
}

func (m *MockCaptchaRepository) FindLive(ctx context.Context, token string, now time.Time) (*model.Captcha, error) {
	args := m.Called(ctx, token, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Captcha), args.Error(1)
}

func (m *MockCaptchaRepository) Claim(ctx context.Context, token, code string, now time.Time) (bool, error) {
	args := m.Called(ctx, token, code, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockCaptchaRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockCaptchaService is a mock implementation of CaptchaService.
type MockCaptchaService struct {
	mock.Mock
}

func (m *MockCaptchaService) Issue(ctx context.Context) (*Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Challenge), args.Error(1)
}

func (m *MockCaptchaService) Verify(ctx context.Context, token, code string) error {
	args := m.Called(ctx, token, code)
	return args.Error(0)
}

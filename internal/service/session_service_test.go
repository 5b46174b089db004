package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/model"
	"sessionauth/internal/repository"
)

func TestSessionService_Create(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("Create", mock.Anything, mock.AnythingOfType("*model.Session")).Return(nil)

	svc := NewSessionService(sessions, new(MockUserRepository), nil, 0, fixedClock())
	session, err := svc.Create(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, session.SessionID, 32)
	assert.Equal(t, uint(7), session.UserID)
	assert.Equal(t, testNow.Add(SessionTTL), session.ExpiresAt)
	sessions.AssertExpectations(t)
}

func TestSessionService_NewIsUnique(t *testing.T) {
	svc := NewSessionService(new(MockSessionRepository), new(MockUserRepository), nil, 0, fixedClock())

	a, err := svc.New(1)
	require.NoError(t, err)
	b, err := svc.New(1)
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestSessionService_Validate(t *testing.T) {
	user := &model.User{ID: 7, Email: "a@b.com", FirstName: "Ada", LastName: "Lovelace"}

	tests := []struct {
		name      string
		setupMock func(*MockSessionRepository, *MockUserRepository)
		wantUser  *model.User
		wantErr   error
		internal  bool
	}{
		{
			name: "live session resolves owner",
			setupMock: func(s *MockSessionRepository, u *MockUserRepository) {
				s.On("FindLive", mock.Anything, "sid", testNow).Return(&model.Session{SessionID: "sid", UserID: 7}, nil)
				u.On("FindByID", mock.Anything, uint(7)).Return(user, nil)
			},
			wantUser: user,
		},
		{
			name: "expired or unknown session",
			setupMock: func(s *MockSessionRepository, u *MockUserRepository) {
				s.On("FindLive", mock.Anything, "sid", testNow).Return(nil, repository.ErrNotFound)
			},
			wantErr: apperrors.ErrSessionExpired,
		},
		{
			name: "owner vanished",
			setupMock: func(s *MockSessionRepository, u *MockUserRepository) {
				s.On("FindLive", mock.Anything, "sid", testNow).Return(&model.Session{SessionID: "sid", UserID: 7}, nil)
				u.On("FindByID", mock.Anything, uint(7)).Return(nil, repository.ErrNotFound)
			},
			wantErr: apperrors.ErrSessionExpired,
		},
		{
			name: "storage error",
			setupMock: func(s *MockSessionRepository, u *MockUserRepository) {
				s.On("FindLive", mock.Anything, "sid", testNow).Return(nil, errors.New("db down"))
			},
			internal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessionRepository)
			users := new(MockUserRepository)
			tt.setupMock(sessions, users)

			svc := NewSessionService(sessions, users, nil, 0, fixedClock())
			got, err := svc.Validate(context.Background(), "sid")

			switch {
			case tt.internal:
				require.Error(t, err)
				assert.True(t, apperrors.Internal(err))
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			}
			sessions.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestSessionService_Invalidate(t *testing.T) {
	sessions := new(MockSessionRepository)
	sessions.On("Delete", mock.Anything, "sid").Return(nil)

	svc := NewSessionService(sessions, new(MockUserRepository), nil, 0, fixedClock())

	require.NoError(t, svc.Invalidate(context.Background(), "sid"))
	require.NoError(t, svc.Invalidate(context.Background(), ""))
	sessions.AssertNumberOfCalls(t, "Delete", 1)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"sessionauth/internal/credential"
	apperrors "sessionauth/internal/errors"
	"sessionauth/internal/model"
	"sessionauth/internal/repository"
)

// RegisterInput is the registration form. Fields are validated in
// declaration order and the first failure decides the answer.
type RegisterInput struct {
	Email     string `json:"email" validate:"account_email"`
	FirstName string `json:"firstName" validate:"person_name"`
	LastName  string `json:"lastName" validate:"person_name"`
	Password  string `json:"password" validate:"account_password"`
	Captcha   string `json:"captcha"`
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService handles the anonymous to authenticated transitions.
type AuthService interface {
	// Register consumes the captcha behind captchaToken, then validates
	// input and creates the user together with its first session.
	Register(ctx context.Context, captchaToken string, input RegisterInput) (*model.Session, error)
	Login(ctx context.Context, input LoginInput) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	users    repository.UserRepository
	captchas CaptchaService
	sessions SessionService
	hasher   credential.Hasher
	validate *validator.Validate
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, captchas CaptchaService, sessions SessionService, hasher credential.Hasher) AuthService {
	return &authService{
		users:    users,
		captchas: captchas,
		sessions: sessions,
		hasher:   hasher,
		validate: credential.NewValidator(),
	}
}

func (s *authService) Register(ctx context.Context, captchaToken string, input RegisterInput) (*model.Session, error) {
	if err := s.captchas.Verify(ctx, captchaToken, input.Captcha); err != nil {
		return nil, err
	}

	if err := s.validateRegistration(input); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
	}
	session, err := s.sessions.New(0)
	if err != nil {
		return nil, err
	}
	if err := s.users.CreateWithSession(ctx, user, session); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race against a concurrent registration
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return session, nil
}

func (s *authService) validateRegistration(input RegisterInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate registration: %w", err)
	}
	switch verrs[0].Tag() {
	case credential.TagEmail:
		return apperrors.ErrInvalidEmail
	case credential.TagName:
		return apperrors.ErrInvalidName
	default:
		return apperrors.ErrInvalidPassword
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*model.Session, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrUnknownEmail
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !credential.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, apperrors.ErrWrongPassword
	}

	return s.sessions.Create(ctx, user.ID)
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Invalidate(ctx, sessionID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clothing_market/internal/model"
	"clothing_market/internal/repository"
	"clothing_market/internal/utils"

	"github.com/sirupsen/logrus"
)

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	bcryptCost int
	log        *logrus.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, bcryptCost int, log *logrus.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Register creates a new user account with a hashed password
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	switch {
	case username == "":
		return nil, invalid("username is required")
	case email == "":
		return nil, invalid("email is required")
	case req.Password == "":
		return nil, invalid("password is required")
	case len(req.Password) > utils.MaxPasswordBytes:
		return nil, invalid("password must be at most %d bytes", utils.MaxPasswordBytes)
	case !model.ValidRole(req.Role):
		return nil, invalid("role must be %q or %q", model.RoleBuyer, model.RoleSeller)
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           utils.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration may have taken the email after the check above
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User registered")
	return user, nil
}

// Login checks the credentials. Unknown email and wrong password fail with the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.log.WithField("user_id", user.ID).Debug("User logged in")
	return user, nil
}

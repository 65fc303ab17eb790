package authService

import (
	"BudgetGolang/internal/api/auth"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	jwtPkg "BudgetGolang/pkg/jwt"
	"BudgetGolang/pkg/redis"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const accessTokenTTL = 24 * time.Hour

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if _, err := repo.User.GetByEmail(ctx, req.Email); err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Email already in use")
		return auth.ErrEmailAlreadyExists
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	user := entity.User{
		ID:       id,
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
	}

	if err := repo.User.Create(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return err
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	user, err := repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
		}
		return auth.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      req.Email,
		}).Warn("Password mismatch")
		return auth.LoginResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, expiresAt, err := jwtPkg.Sign(map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Username,
	}, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout stores the presented token in the revocation cache until it would
// have expired anyway.
func (s *authService) Logout(ctx context.Context, userID string, token string) error {
	return s.redisServer.SetSession(ctx, redis.RevokedTokenKey(token), userID, accessTokenTTL)
}

func (s *authService) GetProfile(ctx context.Context, userID string) (entity.User, error) {
	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	return repo.User.GetByID(ctx, userID)
}

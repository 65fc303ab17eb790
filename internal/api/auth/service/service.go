package authService

import (
	"BudgetGolang/internal/api/auth"
	authRepository "BudgetGolang/internal/api/auth/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/bcrypt"
	"BudgetGolang/pkg/redis"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) error
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Logout(ctx context.Context, userID string, token string) error
	GetProfile(ctx context.Context, userID string) (entity.User, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	redisServer    redis.IRedis
	bcryptUtils    bcrypt.IBcrypt
	utils          utils.IUtils
}

func New(log *logrus.Logger, ar authRepository.Repository, redisServer redis.IRedis, bcryptUtils bcrypt.IBcrypt, utils utils.IUtils) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		redisServer:    redisServer,
		bcryptUtils:    bcryptUtils,
		utils:          utils,
	}
}

package authHandler

import (
	authService "BudgetGolang/internal/api/auth/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.IAuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	authService authService.IAuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: authService,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/register", h.middleware.NewRateLimiter, h.Register)
	auth.Post("/login", h.middleware.NewRateLimiter, h.Login)
	auth.Post("/logout", h.middleware.NewTokenMiddleware, h.Logout)
	auth.Get("/profile", h.middleware.NewTokenMiddleware, h.GetProfile)
}

package config

import (
	"BudgetGolang/database/postgres"
	authHandler "BudgetGolang/internal/api/auth/handler"
	authRepository "BudgetGolang/internal/api/auth/repository"
	authService "BudgetGolang/internal/api/auth/service"
	billHandler "BudgetGolang/internal/api/bill/handler"
	billRepository "BudgetGolang/internal/api/bill/repository"
	billService "BudgetGolang/internal/api/bill/service"
	budgetHandler "BudgetGolang/internal/api/budget/handler"
	budgetRepository "BudgetGolang/internal/api/budget/repository"
	budgetService "BudgetGolang/internal/api/budget/service"
	categoryHandler "BudgetGolang/internal/api/category/handler"
	categoryRepository "BudgetGolang/internal/api/category/repository"
	categoryService "BudgetGolang/internal/api/category/service"
	dashboardHandler "BudgetGolang/internal/api/dashboard/handler"
	dashboardService "BudgetGolang/internal/api/dashboard/service"
	goalHandler "BudgetGolang/internal/api/goal/handler"
	goalRepository "BudgetGolang/internal/api/goal/repository"
	goalService "BudgetGolang/internal/api/goal/service"
	planHandler "BudgetGolang/internal/api/plan/handler"
	planRepository "BudgetGolang/internal/api/plan/repository"
	planService "BudgetGolang/internal/api/plan/service"
	statisticsHandler "BudgetGolang/internal/api/statistics/handler"
	statisticsService "BudgetGolang/internal/api/statistics/service"
	transactionHandler "BudgetGolang/internal/api/transaction/handler"
	transactionRepository "BudgetGolang/internal/api/transaction/repository"
	transactionService "BudgetGolang/internal/api/transaction/service"
	"BudgetGolang/internal/middleware"
	"BudgetGolang/pkg/bcrypt"
	"BudgetGolang/pkg/redis"
	"BudgetGolang/pkg/s3"
	"BudgetGolang/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.redisServer == nil {
			return fmt.Errorf("redis server must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.redisServer, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Categories
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Transactions
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, categoryRepo, s.s3Client, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Budgets
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Bills
	billRepo := billRepository.New(s.db, s.log)
	billServices := billService.NewBillService(s.log, billRepo, s.utils)
	billHandlers := billHandler.New(s.log, s.validator, s.middleware, billServices)

	// Savings Goals
	goalRepo := goalRepository.New(s.db, s.log)
	goalServices := goalService.NewGoalService(s.log, goalRepo, s.utils)
	goalHandlers := goalHandler.New(s.log, s.validator, s.middleware, goalServices)

	// Plans
	planRepo := planRepository.New(s.db, s.log)
	planServices := planService.NewPlanService(s.log, planRepo, s.utils)
	planHandlers := planHandler.New(s.log, s.validator, s.middleware, planServices)

	// Dashboard
	dashboardServices := dashboardService.NewDashboardService(s.log, transactionRepo, budgetRepo, planRepo)
	dashboardHandlers := dashboardHandler.New(s.log, s.validator, s.middleware, dashboardServices)

	// Statistics
	statisticsServices := statisticsService.NewStatisticsService(s.log, transactionRepo, budgetRepo, planRepo)
	statisticsHandlers := statisticsHandler.New(s.log, s.validator, s.middleware, statisticsServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		categoryHandlers,
		transactionHandlers,
		budgetHandlers,
		billHandlers,
		goalHandlers,
		planHandlers,
		dashboardHandlers,
		statisticsHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

package statisticsHandler

import (
	statisticsService "BudgetGolang/internal/api/statistics/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StatisticsHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	statisticsService statisticsService.IStatisticsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	statisticsService statisticsService.IStatisticsService,
) *StatisticsHandler {
	return &StatisticsHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		statisticsService: statisticsService,
	}
}

func (h *StatisticsHandler) Start(srv fiber.Router) {
	stats := srv.Group("/statistics")

	stats.Get("/income-vs-expenses", h.middleware.NewTokenMiddleware, h.GetIncomeVsExpenses)
	stats.Get("/expense-categories", h.middleware.NewTokenMiddleware, h.GetExpenseCategories)
	stats.Get("/monthly-trends", h.middleware.NewTokenMiddleware, h.GetMonthlyTrends)
	stats.Get("/daily-spending", h.middleware.NewTokenMiddleware, h.GetDailySpending)
	stats.Get("/budget-vs-actual", h.middleware.NewTokenMiddleware, h.GetBudgetVsActual)
}

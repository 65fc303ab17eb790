package dashboardHandler

import (
	dashboardService "BudgetGolang/internal/api/dashboard/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	dashboardService dashboardService.IDashboardService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	dashboardService dashboardService.IDashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Start(srv fiber.Router) {
	dashboard := srv.Group("/dashboard")

	dashboard.Get("/summary", h.middleware.NewTokenMiddleware, h.GetSummary)
	dashboard.Get("/today", h.middleware.NewTokenMiddleware, h.GetToday)
	dashboard.Get("/budget-progress", h.middleware.NewTokenMiddleware, h.GetBudgetProgress)
	dashboard.Get("/recent-expenses", h.middleware.NewTokenMiddleware, h.GetRecentExpenses)
}

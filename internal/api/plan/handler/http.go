package planHandler

import (
	planService "BudgetGolang/internal/api/plan/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PlanHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	planService planService.IPlanService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	planService planService.IPlanService,
) *PlanHandler {
	return &PlanHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		planService: planService,
	}
}

func (h *PlanHandler) Start(srv fiber.Router) {
	plans := srv.Group("/plans")

	plans.Get("/:planType", h.middleware.NewTokenMiddleware, h.GetPlan)
	plans.Put("/:planType", h.middleware.NewTokenMiddleware, h.ReplacePlan)
	plans.Post("/items", h.middleware.NewTokenMiddleware, h.CreateItem)
	plans.Put("/items/:id", h.middleware.NewTokenMiddleware, h.UpdateItem)
	plans.Delete("/items/:id", h.middleware.NewTokenMiddleware, h.DeleteItem)
}

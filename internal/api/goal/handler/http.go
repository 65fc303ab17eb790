package goalHandler

import (
	goalService "BudgetGolang/internal/api/goal/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GoalHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	goalService goalService.IGoalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	goalService goalService.IGoalService,
) *GoalHandler {
	return &GoalHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		goalService: goalService,
	}
}

func (h *GoalHandler) Start(srv fiber.Router) {
	goals := srv.Group("/goals")

	goals.Post("/", h.middleware.NewTokenMiddleware, h.CreateGoal)
	goals.Get("/", h.middleware.NewTokenMiddleware, h.GetGoals)
	goals.Get("/:id", h.middleware.NewTokenMiddleware, h.GetGoalByID)
	goals.Put("/", h.middleware.NewTokenMiddleware, h.UpdateGoal)
	goals.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteGoal)
	goals.Post("/:id/funds", h.middleware.NewTokenMiddleware, h.AddFunds)
	goals.Post("/:id/complete", h.middleware.NewTokenMiddleware, h.CompleteGoal)
}

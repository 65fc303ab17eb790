package billHandler

import (
	billService "BudgetGolang/internal/api/bill/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BillHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	billService billService.IBillService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	billService billService.IBillService,
) *BillHandler {
	return &BillHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		billService: billService,
	}
}

func (h *BillHandler) Start(srv fiber.Router) {
	bills := srv.Group("/bills")

	bills.Post("/", h.middleware.NewTokenMiddleware, h.CreateBill)
	bills.Get("/", h.middleware.NewTokenMiddleware, h.GetBills)
	bills.Get("/:id", h.middleware.NewTokenMiddleware, h.GetBillByID)
	bills.Put("/", h.middleware.NewTokenMiddleware, h.UpdateBill)
	bills.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBill)
	bills.Post("/:id/pay", h.middleware.NewTokenMiddleware, h.PayBill)
}

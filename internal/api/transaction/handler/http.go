package transactionHandler

import (
	transactionService "BudgetGolang/internal/api/transaction/service"
	"BudgetGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions")

	transactions.Post("/", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	transactions.Get("/", h.middleware.NewTokenMiddleware, h.GetTransactions)
	transactions.Get("/:id", h.middleware.NewTokenMiddleware, h.GetTransactionByID)
	transactions.Put("/", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	transactions.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
}

package budgetService

import (
	"BudgetGolang/internal/api/budget"
	budgetRepository "BudgetGolang/internal/api/budget/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) error
	GetBudgetByID(ctx context.Context, id string, userID string) (entity.Budget, error)
	GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error)
	UpdateBudget(ctx context.Context, req budget.UpdateBudgetRequest) error
	DeleteBudget(ctx context.Context, id string, userID string) error
}

type budgetService struct {
	log              *logrus.Logger
	budgetRepository budgetRepository.Repository
	utils            utils.IUtils
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:              log,
		budgetRepository: br,
		utils:            utils,
	}
}

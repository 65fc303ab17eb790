package planService

import (
	"BudgetGolang/internal/api/plan"
	planRepository "BudgetGolang/internal/api/plan/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// PlanView is the aggregate a caller sees: items grouped by kind plus the
// derived totals. Plans themselves have no row of their own.
type PlanView struct {
	PlanType     string
	Income       []entity.PlanItem
	Expenses     []entity.PlanItem
	Savings      []entity.PlanItem
	TotalIncome  float64
	TotalExpense float64
	TotalSavings float64
	Remaining    float64
}

type IPlanService interface {
	GetPlan(ctx context.Context, userID string, planType string) (PlanView, error)
	Replace(ctx context.Context, req plan.ReplacePlanRequest) (PlanView, error)
	CreateItem(ctx context.Context, req plan.CreatePlanItemRequest) error
	UpdateItem(ctx context.Context, req plan.UpdatePlanItemRequest) error
	DeleteItem(ctx context.Context, id string, userID string) error
}

type planService struct {
	log            *logrus.Logger
	planRepository planRepository.Repository
	utils          utils.IUtils
}

func NewPlanService(log *logrus.Logger, pr planRepository.Repository, utils utils.IUtils) IPlanService {
	return &planService{
		log:            log,
		planRepository: pr,
		utils:          utils,
	}
}

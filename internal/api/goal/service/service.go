package goalService

import (
	"BudgetGolang/internal/api/goal"
	goalRepository "BudgetGolang/internal/api/goal/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// GoalWithProgress pairs a stored goal with its derived progress figures.
type GoalWithProgress struct {
	entity.SavingsGoal
	Percentage    float64
	DaysRemaining *int
}

type IGoalService interface {
	CreateGoal(ctx context.Context, req goal.CreateGoalRequest) error
	GetGoalByID(ctx context.Context, id string, userID string) (GoalWithProgress, error)
	GetGoals(ctx context.Context, userID string) ([]GoalWithProgress, error)
	UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) error
	DeleteGoal(ctx context.Context, id string, userID string) error
	AddFunds(ctx context.Context, req goal.AddFundsRequest) (GoalWithProgress, error)
	Complete(ctx context.Context, id string, userID string) (GoalWithProgress, error)
}

type goalService struct {
	log            *logrus.Logger
	goalRepository goalRepository.Repository
	utils          utils.IUtils
}

func NewGoalService(log *logrus.Logger, gr goalRepository.Repository, utils utils.IUtils) IGoalService {
	return &goalService{
		log:            log,
		goalRepository: gr,
		utils:          utils,
	}
}

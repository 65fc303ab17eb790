package dashboardService

import (
	"BudgetGolang/internal/api/dashboard"
	budgetRepository "BudgetGolang/internal/api/budget/repository"
	planRepository "BudgetGolang/internal/api/plan/repository"
	transactionRepository "BudgetGolang/internal/api/transaction/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

type IDashboardService interface {
	Summary(ctx context.Context, userID string) (dashboard.SummaryResponse, error)
	Today(ctx context.Context, userID string) (dashboard.TodayResponse, error)
	BudgetProgress(ctx context.Context, userID string, period string) (dashboard.BudgetProgressResponse, error)
	RecentExpenses(ctx context.Context, userID string, limit int) (dashboard.RecentExpensesResponse, error)
}

// dashboardService composes the transaction, budget and plan stores into
// the reporting views. It owns no storage of its own.
type dashboardService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	budgetRepository      budgetRepository.Repository
	planRepository        planRepository.Repository

	// now is the reference clock for every reporting window.
	now func() time.Time
}

func NewDashboardService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	br budgetRepository.Repository,
	pr planRepository.Repository,
) IDashboardService {
	return &dashboardService{
		log:                   log,
		transactionRepository: tr,
		budgetRepository:      br,
		planRepository:        pr,
		now:                   time.Now,
	}
}

package statisticsService

import (
	"BudgetGolang/internal/api/statistics"
	budgetRepository "BudgetGolang/internal/api/budget/repository"
	planRepository "BudgetGolang/internal/api/plan/repository"
	transactionRepository "BudgetGolang/internal/api/transaction/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

type IStatisticsService interface {
	IncomeVsExpenses(ctx context.Context, userID string, months int, granularity string) (statistics.IncomeVsExpensesResponse, error)
	ExpenseCategories(ctx context.Context, userID string, startDate, endDate time.Time) (statistics.ExpenseCategoriesResponse, error)
	MonthlyTrends(ctx context.Context, userID string, months int) (statistics.MonthlyTrendsResponse, error)
	DailySpending(ctx context.Context, userID string, days int) (statistics.DailySpendingResponse, error)
	BudgetVsActual(ctx context.Context, userID string, breakdown string) (statistics.BudgetVsActualResponse, error)
}

type statisticsService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	budgetRepository      budgetRepository.Repository
	planRepository        planRepository.Repository

	// now is the reference clock for every reporting window.
	now func() time.Time
}

func NewStatisticsService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	br budgetRepository.Repository,
	pr planRepository.Repository,
) IStatisticsService {
	return &statisticsService{
		log:                   log,
		transactionRepository: tr,
		budgetRepository:      br,
		planRepository:        pr,
		now:                   time.Now,
	}
}

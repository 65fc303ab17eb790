package budgetService

import (
	"BudgetGolang/internal/api/budget"
	budgetRepository "BudgetGolang/internal/api/budget/repository"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func parseBudgetDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, budget.ErrInvalidDateRange
	}

	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, budget.ErrInvalidDateRange
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, budget.ErrInvalidDateRange
	}

	return start, end, nil
}

// validateAllocations rejects more than one allocation for the same category.
func validateAllocations(allocations []budget.AllocationRequest) error {
	seen := make(map[string]struct{}, len(allocations))
	for _, a := range allocations {
		if _, ok := seen[a.CategoryID]; ok {
			return budget.ErrDuplicateAllocation
		}
		seen[a.CategoryID] = struct{}{}
	}
	return nil
}

func (s *budgetService) writeAllocations(ctx context.Context, repo budgetRepository.Client, budgetID string, allocations []budget.AllocationRequest) error {
	for _, a := range allocations {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}

		allocation := entity.CategoryAllocation{
			ID:         id,
			BudgetID:   budgetID,
			CategoryID: a.CategoryID,
			Amount:     a.Amount,
		}

		if err := repo.Budget.CreateAllocation(ctx, allocation); err != nil {
			return err
		}
	}

	return nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req budget.CreateBudgetRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidBudgetTimeframe(req.Timeframe) {
		return budget.ErrInvalidTimeframe
	}

	start, end, err := parseBudgetDates(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	if err := validateAllocations(req.Allocations); err != nil {
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	repo, err := s.budgetRepository.NewClient(true)
	if err != nil {
		return err
	}

	b := entity.Budget{
		ID:        id,
		UserID:    req.UserID,
		Name:      req.Name,
		Amount:    req.Amount,
		StartDate: start,
		EndDate:   end,
		Timeframe: req.Timeframe,
	}

	if err := repo.Budget.Create(ctx, b); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback budget creation")
		}
		return err
	}

	if err := s.writeAllocations(ctx, repo, id, req.Allocations); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback allocation creation")
		}
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget creation")
		return err
	}

	return nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, id string, userID string) (entity.Budget, error) {
	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return entity.Budget{}, err
	}

	b, err := repo.Budget.GetByID(ctx, id)
	if err != nil {
		return entity.Budget{}, err
	}

	if b.UserID != userID {
		return entity.Budget{}, budget.ErrBudgetNotOwned
	}

	allocations, err := repo.Budget.GetAllocations(ctx, id)
	if err != nil {
		return entity.Budget{}, err
	}
	b.Allocations = allocations

	return b, nil
}

func (s *budgetService) GetBudgets(ctx context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	budgets, err := repo.Budget.GetByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get budgets")
		return nil, err
	}

	for i := range budgets {
		allocations, err := repo.Budget.GetAllocations(ctx, budgets[i].ID)
		if err != nil {
			return nil, err
		}
		budgets[i].Allocations = allocations
	}

	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, req budget.UpdateBudgetRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidBudgetTimeframe(req.Timeframe) {
		return budget.ErrInvalidTimeframe
	}

	start, end, err := parseBudgetDates(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	if err := validateAllocations(req.Allocations); err != nil {
		return err
	}

	readRepo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := readRepo.Budget.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.UserID != req.UserID {
		return budget.ErrBudgetNotOwned
	}

	// Allocations are replaced wholesale with the budget row in one
	// transaction so a half-applied update is never visible.
	repo, err := s.budgetRepository.NewClient(true)
	if err != nil {
		return err
	}

	rollback := func(stage string, cause error) error {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"stage":      stage,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback budget update")
		}
		return cause
	}

	updated := entity.Budget{
		ID:        req.ID,
		UserID:    req.UserID,
		Name:      req.Name,
		Amount:    req.Amount,
		StartDate: start,
		EndDate:   end,
		Timeframe: req.Timeframe,
	}

	if err := repo.Budget.Update(ctx, updated); err != nil {
		return rollback("update_budget", err)
	}

	if err := repo.Budget.DeleteAllocations(ctx, req.ID); err != nil {
		return rollback("delete_allocations", err)
	}

	if err := s.writeAllocations(ctx, repo, req.ID, req.Allocations); err != nil {
		return rollback("create_allocations", err)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget update")
		return err
	}

	return nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	readRepo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := readRepo.Budget.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		return budget.ErrBudgetNotOwned
	}

	repo, err := s.budgetRepository.NewClient(true)
	if err != nil {
		return err
	}

	if err := repo.Budget.DeleteAllocations(ctx, id); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback budget delete")
		}
		return err
	}

	if err := repo.Budget.Delete(ctx, id); err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback budget delete")
		}
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit budget delete")
		return err
	}

	return nil
}

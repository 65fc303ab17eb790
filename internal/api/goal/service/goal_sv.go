package goalService

import (
	"BudgetGolang/internal/api/goal"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"BudgetGolang/pkg/finance"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func withProgress(g entity.SavingsGoal, now time.Time) GoalWithProgress {
	percentage, daysRemaining := finance.Progress(g, now)
	return GoalWithProgress{
		SavingsGoal:   g,
		Percentage:    percentage,
		DaysRemaining: daysRemaining,
	}
}

func parseTargetDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, goal.ErrInvalidTargetDate
	}

	return &t, nil
}

func (s *goalService) CreateGoal(ctx context.Context, req goal.CreateGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return err
	}

	g := entity.SavingsGoal{
		ID:           id,
		UserID:       req.UserID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
		Notes:        req.Notes,
	}

	if err := repo.Goal.Create(ctx, g); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create savings goal")
		return err
	}

	return nil
}

func (s *goalService) getOwned(ctx context.Context, id string, userID string) (entity.SavingsGoal, error) {
	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return entity.SavingsGoal{}, err
	}

	g, err := repo.Goal.GetByID(ctx, id)
	if err != nil {
		return entity.SavingsGoal{}, err
	}

	if g.UserID != userID {
		return entity.SavingsGoal{}, goal.ErrGoalNotOwned
	}

	return g, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, id string, userID string) (GoalWithProgress, error) {
	g, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return GoalWithProgress{}, err
	}

	return withProgress(g, time.Now()), nil
}

func (s *goalService) GetGoals(ctx context.Context, userID string) ([]GoalWithProgress, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	goals, err := repo.Goal.GetByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get savings goals")
		return nil, err
	}

	now := time.Now()
	result := make([]GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		result = append(result, withProgress(g, now))
	}

	return result, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, req goal.UpdateGoalRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		return err
	}

	existing, err := s.getOwned(ctx, req.ID, req.UserID)
	if err != nil {
		return err
	}

	existing.Name = req.Name
	existing.TargetAmount = req.TargetAmount
	existing.TargetDate = targetDate
	existing.Notes = req.Notes

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Goal.Update(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update savings goal")
		return err
	}

	return nil
}

func (s *goalService) DeleteGoal(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return err
	}

	if err := repo.Goal.Delete(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete savings goal")
		return err
	}

	return nil
}

// AddFunds raises the current amount. A goal that reaches or passes its
// target flips to completed in the same write.
func (s *goalService) AddFunds(ctx context.Context, req goal.AddFundsRequest) (GoalWithProgress, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Amount <= 0 {
		return GoalWithProgress{}, goal.ErrInvalidFundsAmount
	}

	existing, err := s.getOwned(ctx, req.ID, req.UserID)
	if err != nil {
		return GoalWithProgress{}, err
	}

	if existing.Completed {
		return GoalWithProgress{}, goal.ErrGoalAlreadyCompleted
	}

	existing.CurrentAmount += req.Amount
	if existing.CurrentAmount >= existing.TargetAmount {
		existing.Completed = true
	}

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return GoalWithProgress{}, err
	}

	if err := repo.Goal.Update(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    req.ID,
			"error":      err.Error(),
		}).Error("Failed to add funds to savings goal")
		return GoalWithProgress{}, err
	}

	if existing.Completed {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    req.ID,
		}).Info("Savings goal reached its target")
	}

	return withProgress(existing, time.Now()), nil
}

// Complete marks the goal done regardless of the saved amount.
func (s *goalService) Complete(ctx context.Context, id string, userID string) (GoalWithProgress, error) {
	requestID := contextPkg.GetRequestID(ctx)

	existing, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return GoalWithProgress{}, err
	}

	if existing.Completed {
		return GoalWithProgress{}, goal.ErrGoalAlreadyCompleted
	}

	existing.Completed = true

	repo, err := s.goalRepository.NewClient(false)
	if err != nil {
		return GoalWithProgress{}, err
	}

	if err := repo.Goal.Update(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"goal_id":    id,
			"error":      err.Error(),
		}).Error("Failed to complete savings goal")
		return GoalWithProgress{}, err
	}

	return withProgress(existing, time.Now()), nil
}

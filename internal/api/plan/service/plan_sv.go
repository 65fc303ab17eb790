package planService

import (
	"BudgetGolang/internal/api/plan"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func buildPlanView(planType string, items []entity.PlanItem) PlanView {
	view := PlanView{
		PlanType: planType,
		Income:   make([]entity.PlanItem, 0),
		Expenses: make([]entity.PlanItem, 0),
		Savings:  make([]entity.PlanItem, 0),
	}

	for _, item := range items {
		switch entity.PlanItemType(item.ItemType) {
		case entity.PlanItemTypeIncome:
			view.Income = append(view.Income, item)
			view.TotalIncome += item.Amount
		case entity.PlanItemTypeExpense:
			view.Expenses = append(view.Expenses, item)
			view.TotalExpense += item.Amount
		case entity.PlanItemTypeSavings:
			view.Savings = append(view.Savings, item)
			view.TotalSavings += item.Amount
		}
	}

	view.Remaining = view.TotalIncome - view.TotalExpense - view.TotalSavings

	return view
}

func (s *planService) GetPlan(ctx context.Context, userID string, planType string) (PlanView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidPlanType(planType) {
		return PlanView{}, plan.ErrInvalidPlanType
	}

	repo, err := s.planRepository.NewClient(false)
	if err != nil {
		return PlanView{}, err
	}

	items, err := repo.PlanItem.GetByUserAndType(ctx, userID, planType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"plan_type":  planType,
			"error":      err.Error(),
		}).Error("Failed to get plan items")
		return PlanView{}, err
	}

	return buildPlanView(planType, items), nil
}

// Replace swaps every item of the plan in one database transaction. Either
// the whole new set lands or the old set stays.
func (s *planService) Replace(ctx context.Context, req plan.ReplacePlanRequest) (PlanView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidPlanType(req.PlanType) {
		return PlanView{}, plan.ErrInvalidPlanType
	}

	for _, item := range req.Items {
		if !entity.IsValidPlanItemType(item.ItemType) {
			return PlanView{}, plan.ErrInvalidItemType
		}
	}

	repo, err := s.planRepository.NewClient(true)
	if err != nil {
		return PlanView{}, err
	}

	rollback := func(cause error) (PlanView, error) {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"plan_type":  req.PlanType,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback plan replacement")
		}
		return PlanView{}, cause
	}

	if err := repo.PlanItem.DeleteByUserAndType(ctx, req.UserID, req.PlanType); err != nil {
		return rollback(err)
	}

	created := make([]entity.PlanItem, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return rollback(err)
		}

		planItem := entity.PlanItem{
			ID:          id,
			UserID:      req.UserID,
			Description: item.Description,
			Amount:      item.Amount,
			CategoryID:  item.CategoryID,
			Notes:       item.Notes,
			PlanType:    req.PlanType,
			ItemType:    item.ItemType,
		}

		if err := repo.PlanItem.Create(ctx, planItem); err != nil {
			return rollback(err)
		}

		created = append(created, planItem)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"plan_type":  req.PlanType,
			"error":      err.Error(),
		}).Error("Failed to commit plan replacement")
		return PlanView{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"plan_type":  req.PlanType,
		"items":      len(created),
	}).Info("Plan replaced")

	return buildPlanView(req.PlanType, created), nil
}

func (s *planService) CreateItem(ctx context.Context, req plan.CreatePlanItemRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidPlanType(req.PlanType) {
		return plan.ErrInvalidPlanType
	}

	if !entity.IsValidPlanItemType(req.ItemType) {
		return plan.ErrInvalidItemType
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	repo, err := s.planRepository.NewClient(false)
	if err != nil {
		return err
	}

	item := entity.PlanItem{
		ID:          id,
		UserID:      req.UserID,
		Description: req.Description,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Notes:       req.Notes,
		PlanType:    req.PlanType,
		ItemType:    req.ItemType,
	}

	if err := repo.PlanItem.Create(ctx, item); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create plan item")
		return err
	}

	return nil
}

func (s *planService) UpdateItem(ctx context.Context, req plan.UpdatePlanItemRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidPlanItemType(req.ItemType) {
		return plan.ErrInvalidItemType
	}

	repo, err := s.planRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.PlanItem.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.UserID != req.UserID {
		return plan.ErrPlanItemNotOwned
	}

	existing.Description = req.Description
	existing.Amount = req.Amount
	existing.CategoryID = req.CategoryID
	existing.Notes = req.Notes
	existing.ItemType = req.ItemType

	if err := repo.PlanItem.Update(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update plan item")
		return err
	}

	return nil
}

func (s *planService) DeleteItem(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.planRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.PlanItem.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		return plan.ErrPlanItemNotOwned
	}

	if err := repo.PlanItem.Delete(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete plan item")
		return err
	}

	return nil
}

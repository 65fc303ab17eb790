package categoryService

import (
	"BudgetGolang/internal/api/category"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if !entity.IsValidTransactionType(req.Type) {
		return category.ErrInvalidCategoryType
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	cat := entity.Category{
		ID:          id,
		UserID:      req.UserID,
		Name:        req.Name,
		Type:        req.Type,
		Color:       req.Color,
		Icon:        req.Icon,
		IsDefault:   false,
		Description: req.Description,
	}

	if err := repo.Category.Create(ctx, cat); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return err
	}

	return nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error) {
	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return entity.Category{}, err
	}

	cat, err := repo.Category.GetByID(ctx, id)
	if err != nil {
		return entity.Category{}, err
	}

	// Default categories are shared; everything else is owner-only.
	if !cat.IsDefault && cat.UserID != userID {
		return entity.Category{}, category.ErrCategoryNotOwned
	}

	return cat, nil
}

func (s *categoryService) GetCategoriesForUser(ctx context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	categories, err := repo.Category.GetForUser(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get categories for user")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	if !entity.IsValidTransactionType(req.Type) {
		return category.ErrInvalidCategoryType
	}

	existing, err := repo.Category.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.IsDefault {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": req.ID,
		}).Warn("Attempt to modify default category")
		return category.ErrDefaultCategoryImmutable
	}

	if existing.UserID != req.UserID {
		return category.ErrCategoryNotOwned
	}

	updated := entity.Category{
		ID:          req.ID,
		UserID:      req.UserID,
		Name:        req.Name,
		Type:        req.Type,
		Color:       req.Color,
		Icon:        req.Icon,
		Description: req.Description,
	}

	if err := repo.Category.Update(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return err
	}

	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Category.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.IsDefault {
		return category.ErrDefaultCategoryImmutable
	}

	if existing.UserID != userID {
		return category.ErrCategoryNotOwned
	}

	// Referential guard: a category still referenced by transactions or
	// bills cannot be removed. Checked here at the service boundary rather
	// than delegated to storage constraints.
	txCount, err := repo.Category.CountTransactionReferences(ctx, id)
	if err != nil {
		return err
	}
	billCount, err := repo.Category.CountBillReferences(ctx, id)
	if err != nil {
		return err
	}

	if txCount > 0 || billCount > 0 {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"category_id":  id,
			"transactions": txCount,
			"bills":        billCount,
		}).Warn("Category still referenced, refusing delete")
		return category.ErrCategoryInUse
	}

	if err := repo.Category.Delete(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return err
	}

	return nil
}

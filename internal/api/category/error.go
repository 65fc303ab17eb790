package category

import "BudgetGolang/pkg/response"

var (
	ErrCategoryNotFound         = response.NewError(404, "category not found")
	ErrCategoryNotOwned         = response.NewError(403, "category does not belong to user")
	ErrDefaultCategoryImmutable = response.NewError(403, "default categories cannot be modified or deleted")
	ErrCategoryInUse            = response.NewError(403, "category is referenced by transactions or bills")
	ErrInvalidCategoryType      = response.NewError(400, "invalid category type")
)

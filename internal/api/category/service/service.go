package categoryService

import (
	"BudgetGolang/internal/api/category"
	categoryRepository "BudgetGolang/internal/api/category/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) error
	GetCategoryByID(ctx context.Context, id string, userID string) (entity.Category, error)
	GetCategoriesForUser(ctx context.Context, userID string) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, req category.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id string, userID string) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	utils              utils.IUtils
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, utils utils.IUtils) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
		utils:              utils,
	}
}

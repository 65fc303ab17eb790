package categoryRepository

import (
	"BudgetGolang/internal/api/category"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type CategoryDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Name        sql.NullString `db:"name"`
	Type        sql.NullString `db:"type"`
	Color       sql.NullString `db:"color"`
	Icon        sql.NullString `db:"icon"`
	IsDefault   sql.NullBool   `db:"is_default"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r *categoryRepository) Create(c context.Context, cat entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          cat.ID,
		"user_id":     cat.UserID,
		"name":        cat.Name,
		"type":        cat.Type,
		"color":       cat.Color,
		"icon":        cat.Icon,
		"is_default":  cat.IsDefault,
		"description": cat.Description,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}

func (r *categoryRepository) GetByID(c context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var cat CategoryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&cat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(cat), nil
}

func (r *categoryRepository) GetForUser(c context.Context, userID string) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var categories []CategoryDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetCategoriesForUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetForUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &categories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetForUser execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(categories))
	for _, cat := range categories {
		result = append(result, r.makeCategory(cat))
	}

	return result, nil
}

func (r *categoryRepository) Update(c context.Context, cat entity.Category) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          cat.ID,
		"name":        cat.Name,
		"type":        cat.Type,
		"color":       cat.Color,
		"icon":        cat.Icon,
		"description": cat.Description,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *categoryRepository) CountTransactionReferences(c context.Context, categoryID string) (int, error) {
	return r.countReferences(c, queryCountTransactionReferences, categoryID)
}

func (r *categoryRepository) CountBillReferences(c context.Context, categoryID string) (int, error) {
	return r.countReferences(c, queryCountBillReferences, categoryID)
}

func (r *categoryRepository) countReferences(c context.Context, namedQuery string, categoryID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var count int

	argsKV := map[string]interface{}{
		"category_id": categoryID,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("countReferences named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("countReferences execution err")
		return 0, err
	}

	return count, nil
}

func (r *categoryRepository) makeCategory(cat CategoryDB) entity.Category {
	return entity.Category{
		ID:          cat.ID.String,
		UserID:      cat.UserID.String,
		Name:        cat.Name.String,
		Type:        cat.Type.String,
		Color:       cat.Color.String,
		Icon:        cat.Icon.String,
		IsDefault:   cat.IsDefault.Bool,
		Description: cat.Description.String,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

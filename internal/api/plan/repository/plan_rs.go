package planRepository

import (
	"BudgetGolang/internal/api/plan"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type PlanItemDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Description sql.NullString  `db:"description"`
	Amount      sql.NullFloat64 `db:"amount"`
	CategoryID  sql.NullString  `db:"category_id"`
	Notes       sql.NullString  `db:"notes"`
	PlanType    sql.NullString  `db:"plan_type"`
	ItemType    sql.NullString  `db:"item_type"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *planItemRepository) Create(c context.Context, item entity.PlanItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          item.ID,
		"user_id":     item.UserID,
		"description": item.Description,
		"amount":      item.Amount,
		"category_id": sql.NullString{String: item.CategoryID, Valid: item.CategoryID != ""},
		"notes":       item.Notes,
		"plan_type":   item.PlanType,
		"item_type":   item.ItemType,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePlanItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePlanItem")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating plan item")
		return err
	}

	return nil
}

func (r *planItemRepository) GetByID(c context.Context, id string) (entity.PlanItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var item PlanItemDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPlanItemByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.PlanItem{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PlanItem{}, plan.ErrPlanItemNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.PlanItem{}, err
	}

	return r.makePlanItem(item), nil
}

func (r *planItemRepository) GetByUserAndType(c context.Context, userID string, planType string) ([]entity.PlanItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var items []PlanItemDB

	argsKV := map[string]interface{}{
		"user_id":   userID,
		"plan_type": planType,
	}

	query, args, err := sqlx.Named(queryGetPlanItemsByUserAndType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserAndType named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserAndType execution err")
		return nil, err
	}

	result := make([]entity.PlanItem, 0, len(items))
	for _, item := range items {
		result = append(result, r.makePlanItem(item))
	}

	return result, nil
}

func (r *planItemRepository) GetSavingsByUserID(c context.Context, userID string) ([]entity.PlanItem, error) {
	requestID := contextPkg.GetRequestID(c)
	var items []PlanItemDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetSavingsItemsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSavingsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSavingsByUserID execution err")
		return nil, err
	}

	result := make([]entity.PlanItem, 0, len(items))
	for _, item := range items {
		result = append(result, r.makePlanItem(item))
	}

	return result, nil
}

func (r *planItemRepository) Update(c context.Context, item entity.PlanItem) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          item.ID,
		"description": item.Description,
		"amount":      item.Amount,
		"category_id": sql.NullString{String: item.CategoryID, Valid: item.CategoryID != ""},
		"notes":       item.Notes,
		"item_type":   item.ItemType,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdatePlanItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePlanItem named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePlanItem execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return plan.ErrPlanItemNotFound
	}

	return nil
}

func (r *planItemRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePlanItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePlanItem named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePlanItem execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return plan.ErrPlanItemNotFound
	}

	return nil
}

func (r *planItemRepository) DeleteByUserAndType(c context.Context, userID string, planType string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":   userID,
		"plan_type": planType,
	}

	query, args, err := sqlx.Named(queryDeletePlanItemsByUserAndType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByUserAndType named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	// Zero rows deleted is fine: replacing an empty plan is legal.
	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByUserAndType execution err")
		return err
	}

	return nil
}

func (r *planItemRepository) makePlanItem(item PlanItemDB) entity.PlanItem {
	return entity.PlanItem{
		ID:          item.ID.String,
		UserID:      item.UserID.String,
		Description: item.Description.String,
		Amount:      item.Amount.Float64,
		CategoryID:  item.CategoryID.String,
		Notes:       item.Notes.String,
		PlanType:    item.PlanType.String,
		ItemType:    item.ItemType.String,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

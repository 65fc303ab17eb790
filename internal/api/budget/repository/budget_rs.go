package budgetRepository

import (
	"BudgetGolang/internal/api/budget"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type BudgetDB struct {
	ID        sql.NullString  `db:"id"`
	UserID    sql.NullString  `db:"user_id"`
	Name      sql.NullString  `db:"name"`
	Amount    sql.NullFloat64 `db:"amount"`
	StartDate time.Time       `db:"start_date"`
	EndDate   time.Time       `db:"end_date"`
	Timeframe sql.NullString  `db:"timeframe"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type AllocationDB struct {
	ID         sql.NullString  `db:"id"`
	BudgetID   sql.NullString  `db:"budget_id"`
	CategoryID sql.NullString  `db:"category_id"`
	Amount     sql.NullFloat64 `db:"amount"`
}

func (r *budgetRepository) Create(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         b.ID,
		"user_id":    b.UserID,
		"name":       b.Name,
		"amount":     b.Amount,
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"timeframe":  b.Timeframe,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBudget")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")
		return err
	}

	return nil
}

func (r *budgetRepository) GetByID(c context.Context, id string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BudgetDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBudgetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b), nil
}

func (r *budgetRepository) GetByUserID(c context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var budgets []BudgetDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	result := make([]entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, r.makeBudget(b))
	}

	return result, nil
}

func (r *budgetRepository) GetActive(c context.Context, userID string, timeframe string, at time.Time) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BudgetDB

	argsKV := map[string]interface{}{
		"user_id":   userID,
		"timeframe": timeframe,
		"at":        at,
	}

	query, args, err := sqlx.Named(queryGetActiveBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActive named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActive execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b), nil
}

func (r *budgetRepository) Update(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         b.ID,
		"name":       b.Name,
		"amount":     b.Amount,
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"timeframe":  b.Timeframe,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) CreateAllocation(c context.Context, allocation entity.CategoryAllocation) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          allocation.ID,
		"budget_id":   allocation.BudgetID,
		"category_id": allocation.CategoryID,
		"amount":      allocation.Amount,
	}

	query, args, err := sqlx.Named(queryCreateAllocation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAllocation named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAllocation execution err")
		return err
	}

	return nil
}

func (r *budgetRepository) GetAllocations(c context.Context, budgetID string) ([]entity.CategoryAllocation, error) {
	requestID := contextPkg.GetRequestID(c)
	var allocations []AllocationDB

	argsKV := map[string]interface{}{
		"budget_id": budgetID,
	}

	query, args, err := sqlx.Named(queryGetAllocations, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllocations named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &allocations, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllocations execution err")
		return nil, err
	}

	result := make([]entity.CategoryAllocation, 0, len(allocations))
	for _, a := range allocations {
		result = append(result, entity.CategoryAllocation{
			ID:         a.ID.String,
			BudgetID:   a.BudgetID.String,
			CategoryID: a.CategoryID.String,
			Amount:     a.Amount.Float64,
		})
	}

	return result, nil
}

func (r *budgetRepository) DeleteAllocations(c context.Context, budgetID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"budget_id": budgetID,
	}

	query, args, err := sqlx.Named(queryDeleteAllocations, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAllocations named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAllocations execution err")
		return err
	}

	return nil
}

func (r *budgetRepository) makeBudget(b BudgetDB) entity.Budget {
	return entity.Budget{
		ID:        b.ID.String,
		UserID:    b.UserID.String,
		Name:      b.Name.String,
		Amount:    b.Amount.Float64,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Timeframe: b.Timeframe.String,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

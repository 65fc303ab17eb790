package goalRepository

import (
	"BudgetGolang/internal/api/goal"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type GoalDB struct {
	ID            sql.NullString  `db:"id"`
	UserID        sql.NullString  `db:"user_id"`
	Name          sql.NullString  `db:"name"`
	TargetAmount  sql.NullFloat64 `db:"target_amount"`
	CurrentAmount sql.NullFloat64 `db:"current_amount"`
	TargetDate    sql.NullTime    `db:"target_date"`
	Completed     sql.NullBool    `db:"completed"`
	Notes         sql.NullString  `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (r *goalRepository) Create(c context.Context, g entity.SavingsGoal) error {
	requestID := contextPkg.GetRequestID(c)

	var targetDate sql.NullTime
	if g.TargetDate != nil {
		targetDate = sql.NullTime{Time: *g.TargetDate, Valid: true}
	}

	argsKV := map[string]interface{}{
		"id":             g.ID,
		"user_id":        g.UserID,
		"name":           g.Name,
		"target_amount":  g.TargetAmount,
		"current_amount": g.CurrentAmount,
		"target_date":    targetDate,
		"completed":      g.Completed,
		"notes":          g.Notes,
		"created_at":     time.Now(),
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateGoal")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating savings goal")
		return err
	}

	return nil
}

func (r *goalRepository) GetByID(c context.Context, id string) (entity.SavingsGoal, error) {
	requestID := contextPkg.GetRequestID(c)
	var g GoalDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetGoalByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.SavingsGoal{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.SavingsGoal{}, goal.ErrGoalNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.SavingsGoal{}, err
	}

	return r.makeGoal(g), nil
}

func (r *goalRepository) GetByUserID(c context.Context, userID string) ([]entity.SavingsGoal, error) {
	requestID := contextPkg.GetRequestID(c)
	var goals []GoalDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetGoalsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &goals, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	result := make([]entity.SavingsGoal, 0, len(goals))
	for _, g := range goals {
		result = append(result, r.makeGoal(g))
	}

	return result, nil
}

func (r *goalRepository) Update(c context.Context, g entity.SavingsGoal) error {
	requestID := contextPkg.GetRequestID(c)

	var targetDate sql.NullTime
	if g.TargetDate != nil {
		targetDate = sql.NullTime{Time: *g.TargetDate, Valid: true}
	}

	argsKV := map[string]interface{}{
		"id":             g.ID,
		"name":           g.Name,
		"target_amount":  g.TargetAmount,
		"current_amount": g.CurrentAmount,
		"target_date":    targetDate,
		"completed":      g.Completed,
		"notes":          g.Notes,
		"updated_at":     time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateGoal execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteGoal, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteGoal execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return goal.ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) makeGoal(g GoalDB) entity.SavingsGoal {
	var targetDate *time.Time
	if g.TargetDate.Valid {
		t := g.TargetDate.Time
		targetDate = &t
	}

	return entity.SavingsGoal{
		ID:            g.ID.String,
		UserID:        g.UserID.String,
		Name:          g.Name.String,
		TargetAmount:  g.TargetAmount.Float64,
		CurrentAmount: g.CurrentAmount.Float64,
		TargetDate:    targetDate,
		Completed:     g.Completed.Bool,
		Notes:         g.Notes.String,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

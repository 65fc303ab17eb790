package billRepository

import (
	"BudgetGolang/internal/api/bill"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type BillDB struct {
	ID         sql.NullString  `db:"id"`
	UserID     sql.NullString  `db:"user_id"`
	Name       sql.NullString  `db:"name"`
	Amount     sql.NullFloat64 `db:"amount"`
	DueDate    time.Time       `db:"due_date"`
	Frequency  sql.NullString  `db:"frequency"`
	Autopay    sql.NullBool    `db:"autopay"`
	Notes      sql.NullString  `db:"notes"`
	CategoryID sql.NullString  `db:"category_id"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (r *billRepository) Create(c context.Context, b entity.Bill) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          b.ID,
		"user_id":     b.UserID,
		"name":        b.Name,
		"amount":      b.Amount,
		"due_date":    b.DueDate,
		"frequency":   b.Frequency,
		"autopay":     b.Autopay,
		"notes":       b.Notes,
		"category_id": b.CategoryID,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBill, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBill")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating bill")
		return err
	}

	return nil
}

func (r *billRepository) GetByID(c context.Context, id string) (entity.Bill, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BillDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBillByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Bill{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Bill{}, bill.ErrBillNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Bill{}, err
	}

	return r.makeBill(b), nil
}

func (r *billRepository) GetByUserID(c context.Context, userID string) ([]entity.Bill, error) {
	requestID := contextPkg.GetRequestID(c)
	var bills []BillDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBillsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &bills, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	result := make([]entity.Bill, 0, len(bills))
	for _, b := range bills {
		result = append(result, r.makeBill(b))
	}

	return result, nil
}

func (r *billRepository) Update(c context.Context, b entity.Bill) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          b.ID,
		"name":        b.Name,
		"amount":      b.Amount,
		"due_date":    b.DueDate,
		"frequency":   b.Frequency,
		"autopay":     b.Autopay,
		"notes":       b.Notes,
		"category_id": b.CategoryID,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBill, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBill named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBill execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return bill.ErrBillNotFound
	}

	return nil
}

func (r *billRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBill, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBill named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBill execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return bill.ErrBillNotFound
	}

	return nil
}

func (r *billRepository) makeBill(b BillDB) entity.Bill {
	return entity.Bill{
		ID:         b.ID.String,
		UserID:     b.UserID.String,
		Name:       b.Name.String,
		Amount:     b.Amount.Float64,
		DueDate:    b.DueDate,
		Frequency:  b.Frequency.String,
		Autopay:    b.Autopay.Bool,
		Notes:      b.Notes.String,
		CategoryID: b.CategoryID.String,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (r *paymentRepository) Create(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           tx.ID,
		"user_id":      tx.UserID,
		"amount":       tx.Amount,
		"type":         tx.Type,
		"date":         tx.Date,
		"category_id":  tx.CategoryID,
		"bill_id":      sql.NullString{String: tx.BillID, Valid: tx.BillID != ""},
		"description":  tx.Description,
		"notes":        tx.Notes,
		"receipt_link": tx.ReceiptLink,
		"created_at":   time.Now(),
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreatePaymentTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreatePaymentTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreatePaymentTransaction execution err")
		return err
	}

	return nil
}

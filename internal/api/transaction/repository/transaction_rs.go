package transactionRepository

import (
	"BudgetGolang/internal/api/transaction"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type TransactionDB struct {
	ID          sql.NullString  `db:"id"`
	UserID      sql.NullString  `db:"user_id"`
	Amount      sql.NullFloat64 `db:"amount"`
	Type        sql.NullString  `db:"type"`
	Date        time.Time       `db:"date"`
	CategoryID  sql.NullString  `db:"category_id"`
	BillID      sql.NullString  `db:"bill_id"`
	Description sql.NullString  `db:"description"`
	Notes       sql.NullString  `db:"notes"`
	ReceiptLink sql.NullString  `db:"receipt_link"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *transactionRepository) Create(c context.Context, tx entity.Transaction) error {
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

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var tx TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&tx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(tx), nil
}

func (r *transactionRepository) GetByUserID(c context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transactions []TransactionDB

	namedQuery := queryGetTransactionsBase
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	if filter.Type != nil {
		namedQuery += " AND type = :type"
		argsKV["type"] = *filter.Type
	}
	if filter.CategoryID != nil {
		namedQuery += " AND category_id = :category_id"
		argsKV["category_id"] = *filter.CategoryID
	}
	if filter.BillID != nil {
		namedQuery += " AND bill_id = :bill_id"
		argsKV["bill_id"] = *filter.BillID
	}
	if filter.StartDate != nil {
		namedQuery += " AND date >= :start_date"
		argsKV["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		namedQuery += " AND date <= :end_date"
		argsKV["end_date"] = *filter.EndDate
	}
	if filter.Search != nil {
		namedQuery += " AND (description ILIKE :search OR notes ILIKE :search)"
		argsKV["search"] = "%" + *filter.Search + "%"
	}

	namedQuery += " ORDER BY date DESC"

	if filter.Limit > 0 {
		namedQuery += " LIMIT :limit"
		argsKV["limit"] = filter.Limit
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, r.makeTransaction(tx))
	}

	return result, nil
}

func (r *transactionRepository) GetRecentExpenses(c context.Context, userID string, limit int) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var transactions []TransactionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetRecentExpenses, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentExpenses named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRecentExpenses execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, r.makeTransaction(tx))
	}

	return result, nil
}

func (r *transactionRepository) Update(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           tx.ID,
		"amount":       tx.Amount,
		"type":         tx.Type,
		"date":         tx.Date,
		"category_id":  tx.CategoryID,
		"description":  tx.Description,
		"notes":        tx.Notes,
		"receipt_link": tx.ReceiptLink,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) makeTransaction(tx TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          tx.ID.String,
		UserID:      tx.UserID.String,
		Amount:      tx.Amount.Float64,
		Type:        tx.Type.String,
		Date:        tx.Date,
		CategoryID:  tx.CategoryID.String,
		BillID:      tx.BillID.String,
		Description: tx.Description.String,
		Notes:       tx.Notes.String,
		ReceiptLink: tx.ReceiptLink.String,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

package transactionService

import (
	"BudgetGolang/internal/api/transaction"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
	"time"
)

// resolveCategory checks that the category exists, is visible to the user,
// and matches the transaction type. Income transactions need an income
// category, expenses an expense category.
func (s *transactionService) resolveCategory(ctx context.Context, categoryID, userID, transactionType string) error {
	catRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return err
	}

	cat, err := catRepo.Category.GetByID(ctx, categoryID)
	if err != nil {
		return transaction.ErrInvalidCategory
	}

	if !cat.IsDefault && cat.UserID != userID {
		return transaction.ErrInvalidCategory
	}

	if cat.Type != transactionType {
		return transaction.ErrInvalidCategory
	}

	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest, receipt *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTransactionType(req.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if req.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return transaction.ErrInvalidDate
	}

	if err := s.resolveCategory(ctx, req.CategoryID, req.UserID, req.Type); err != nil {
		return err
	}

	receiptLink := ""
	if receipt != nil {
		if err := s.utils.ValidateImageFile(receipt); err != nil {
			return transaction.ErrInvalidReceiptFile
		}

		receiptLink, err = s.s3Client.UploadFile(receipt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload receipt")
			return err
		}
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	tx := entity.Transaction{
		ID:          id,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Notes:       req.Notes,
		ReceiptLink: receiptLink,
	}

	if err := repo.Transaction.Create(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return err
	}

	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return entity.Transaction{}, err
	}

	tx, err := repo.Transaction.GetByID(ctx, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	if tx.UserID != userID {
		return entity.Transaction{}, transaction.ErrTransactionNotOwned
	}

	if tx.ReceiptLink != "" {
		presigned, err := s.s3Client.PresignUrl(tx.ReceiptLink)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": tx.ID,
				"error":          err.Error(),
			}).Warn("Failed to presign receipt link")
		} else {
			tx.ReceiptLink = presigned
		}
	}

	return tx, nil
}

func (s *transactionService) GetTransactions(ctx context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if filter.Type != nil && !entity.IsValidTransactionType(*filter.Type) {
		return nil, transaction.ErrInvalidTransactionType
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	transactions, err := repo.Transaction.GetByUserID(ctx, userID, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get transactions")
		return nil, err
	}

	return transactions, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest, receipt *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTransactionType(req.Type) {
		return transaction.ErrInvalidTransactionType
	}

	if req.Amount <= 0 {
		return transaction.ErrInvalidAmount
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return transaction.ErrInvalidDate
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Transaction.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.UserID != req.UserID {
		return transaction.ErrTransactionNotOwned
	}

	if err := s.resolveCategory(ctx, req.CategoryID, req.UserID, req.Type); err != nil {
		return err
	}

	receiptLink := existing.ReceiptLink

	if req.DeleteReceipt && existing.ReceiptLink != "" {
		if err := s.s3Client.DeleteFile(existing.ReceiptLink); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete old receipt")
		}
		receiptLink = ""
	}

	if receipt != nil {
		if err := s.utils.ValidateImageFile(receipt); err != nil {
			return transaction.ErrInvalidReceiptFile
		}

		if existing.ReceiptLink != "" && !req.DeleteReceipt {
			if err := s.s3Client.DeleteFile(existing.ReceiptLink); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Failed to delete replaced receipt")
			}
		}

		receiptLink, err = s.s3Client.UploadFile(receipt)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload receipt")
			return err
		}
	}

	updated := entity.Transaction{
		ID:          req.ID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        date,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Notes:       req.Notes,
		ReceiptLink: receiptLink,
	}

	if err := repo.Transaction.Update(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return err
	}

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Transaction.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		return transaction.ErrTransactionNotOwned
	}

	if existing.ReceiptLink != "" {
		if err := s.s3Client.DeleteFile(existing.ReceiptLink); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete receipt for removed transaction")
		}
	}

	if err := repo.Transaction.Delete(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return err
	}

	return nil
}

package billService

import (
	"BudgetGolang/internal/api/bill"
	"BudgetGolang/internal/entity"
	contextPkg "BudgetGolang/pkg/context"
	"BudgetGolang/pkg/finance"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

func classify(b entity.Bill, now time.Time) BillWithStatus {
	status, days := finance.Classify(b.DueDate, now)
	return BillWithStatus{
		Bill:         b,
		Status:       status,
		DaysUntilDue: days,
	}
}

func (s *billService) CreateBill(ctx context.Context, req bill.CreateBillRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidBillFrequency(req.Frequency) {
		return bill.ErrInvalidFrequency
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return bill.ErrInvalidDueDate
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	repo, err := s.billRepository.NewClient(false)
	if err != nil {
		return err
	}

	b := entity.Bill{
		ID:         id,
		UserID:     req.UserID,
		Name:       req.Name,
		Amount:     req.Amount,
		DueDate:    dueDate,
		Frequency:  req.Frequency,
		Autopay:    req.Autopay,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
	}

	if err := repo.Bill.Create(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create bill")
		return err
	}

	return nil
}

func (s *billService) GetBillByID(ctx context.Context, id string, userID string) (BillWithStatus, error) {
	repo, err := s.billRepository.NewClient(false)
	if err != nil {
		return BillWithStatus{}, err
	}

	b, err := repo.Bill.GetByID(ctx, id)
	if err != nil {
		return BillWithStatus{}, err
	}

	if b.UserID != userID {
		return BillWithStatus{}, bill.ErrBillNotOwned
	}

	return classify(b, time.Now()), nil
}

func (s *billService) ListWithStatus(ctx context.Context, userID string, statusFilter string) ([]BillWithStatus, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if statusFilter != "" && !entity.IsValidBillStatus(statusFilter) {
		return nil, bill.ErrInvalidStatusFilter
	}

	repo, err := s.billRepository.NewClient(false)
	if err != nil {
		return nil, err
	}

	bills, err := repo.Bill.GetByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get bills")
		return nil, err
	}

	now := time.Now()
	result := make([]BillWithStatus, 0, len(bills))
	for _, b := range bills {
		enriched := classify(b, now)

		// A "paid" filter is accepted but matches nothing: classification
		// only ever yields upcoming or overdue.
		if statusFilter != "" && string(enriched.Status) != statusFilter {
			continue
		}

		result = append(result, enriched)
	}

	return result, nil
}

func (s *billService) UpdateBill(ctx context.Context, req bill.UpdateBillRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidBillFrequency(req.Frequency) {
		return bill.ErrInvalidFrequency
	}

	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return bill.ErrInvalidDueDate
	}

	repo, err := s.billRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Bill.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if existing.UserID != req.UserID {
		return bill.ErrBillNotOwned
	}

	updated := entity.Bill{
		ID:         req.ID,
		UserID:     req.UserID,
		Name:       req.Name,
		Amount:     req.Amount,
		DueDate:    dueDate,
		Frequency:  req.Frequency,
		Autopay:    req.Autopay,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
	}

	if err := repo.Bill.Update(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update bill")
		return err
	}

	return nil
}

func (s *billService) DeleteBill(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.billRepository.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Bill.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		return bill.ErrBillNotOwned
	}

	if err := repo.Bill.Delete(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete bill")
		return err
	}

	return nil
}

// Pay advances the due date one frequency step and, unless suppressed,
// records the payment as an expense transaction in the same database
// transaction. The payment date is echoed back but never stored.
func (s *billService) Pay(ctx context.Context, req bill.PayBillRequest) (BillWithStatus, string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PaymentDate)
		if err != nil {
			return BillWithStatus{}, "", bill.ErrInvalidPaymentDate
		}
		paymentDate = parsed
	}

	readRepo, err := s.billRepository.NewClient(false)
	if err != nil {
		return BillWithStatus{}, "", err
	}

	existing, err := readRepo.Bill.GetByID(ctx, req.ID)
	if err != nil {
		return BillWithStatus{}, "", err
	}

	if existing.UserID != req.UserID {
		return BillWithStatus{}, "", bill.ErrBillNotOwned
	}

	repo, err := s.billRepository.NewClient(true)
	if err != nil {
		return BillWithStatus{}, "", err
	}

	rollback := func(cause error) (BillWithStatus, string, error) {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"bill_id":    req.ID,
				"error":      rbErr.Error(),
			}).Error("Failed to rollback bill payment")
		}
		return BillWithStatus{}, "", cause
	}

	existing.DueDate = finance.Advance(existing.DueDate, entity.BillFrequency(existing.Frequency))

	if err := repo.Bill.Update(ctx, existing); err != nil {
		return rollback(err)
	}

	if !req.SkipTransaction {
		txID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return rollback(err)
		}

		payment := entity.Transaction{
			ID:          txID,
			UserID:      existing.UserID,
			Amount:      existing.Amount,
			Type:        string(entity.TransactionTypeExpense),
			Date:        paymentDate,
			CategoryID:  existing.CategoryID,
			BillID:      existing.ID,
			Description: fmt.Sprintf("Payment for %s", existing.Name),
		}

		if err := repo.Transaction.Create(ctx, payment); err != nil {
			return rollback(err)
		}
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"bill_id":    req.ID,
			"error":      err.Error(),
		}).Error("Failed to commit bill payment")
		return BillWithStatus{}, "", err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"bill_id":    req.ID,
		"due_date":   existing.DueDate,
	}).Info("Bill paid, due date advanced")

	return classify(existing, time.Now()), paymentDate.Format(time.RFC3339), nil
}

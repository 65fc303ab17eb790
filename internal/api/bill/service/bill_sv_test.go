package billService

import (
	"BudgetGolang/internal/api/bill"
	billRepository "BudgetGolang/internal/api/bill/repository"
	"BudgetGolang/internal/entity"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

// fakeBillStore mimics the repository's transaction contract: a tx client
// stages bill updates and payment inserts, and only Commit makes them
// visible.
type fakeBillStore struct {
	bills            map[string]entity.Bill
	payments         []entity.Transaction
	createPaymentErr error
}

func newFakeBillStore(bills ...entity.Bill) *fakeBillStore {
	store := &fakeBillStore{bills: make(map[string]entity.Bill)}
	for _, b := range bills {
		store.bills[b.ID] = b
	}
	return store
}

func (f *fakeBillStore) NewClient(tx bool) (billRepository.Client, error) {
	session := &billSession{store: f, tx: tx}
	if tx {
		session.bills = make(map[string]entity.Bill, len(f.bills))
		for id, b := range f.bills {
			session.bills[id] = b
		}
	}

	commit := func() error { return nil }
	if tx {
		commit = func() error {
			f.bills = session.bills
			f.payments = append(f.payments, session.payments...)
			return nil
		}
	}

	return billRepository.Client{
		Bill:        session,
		Transaction: &paymentSession{session},
		Commit:      commit,
		Rollback:    func() error { return nil },
	}, nil
}

type billSession struct {
	store    *fakeBillStore
	tx       bool
	bills    map[string]entity.Bill
	payments []entity.Transaction
}

func (s *billSession) current() map[string]entity.Bill {
	if s.tx {
		return s.bills
	}
	return s.store.bills
}

func (s *billSession) Create(_ context.Context, b entity.Bill) error {
	s.current()[b.ID] = b
	return nil
}

func (s *billSession) GetByID(_ context.Context, id string) (entity.Bill, error) {
	b, ok := s.current()[id]
	if !ok {
		return entity.Bill{}, bill.ErrBillNotFound
	}
	return b, nil
}

func (s *billSession) GetByUserID(_ context.Context, userID string) ([]entity.Bill, error) {
	var result []entity.Bill
	for _, b := range s.current() {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *billSession) Update(_ context.Context, b entity.Bill) error {
	if _, ok := s.current()[b.ID]; !ok {
		return bill.ErrBillNotFound
	}
	s.current()[b.ID] = b
	return nil
}

func (s *billSession) Delete(_ context.Context, id string) error {
	if _, ok := s.current()[id]; !ok {
		return bill.ErrBillNotFound
	}
	delete(s.current(), id)
	return nil
}

type paymentSession struct {
	s *billSession
}

func (p *paymentSession) Create(_ context.Context, tx entity.Transaction) error {
	if p.s.store.createPaymentErr != nil {
		return p.s.store.createPaymentErr
	}
	if p.s.tx {
		p.s.payments = append(p.s.payments, tx)
	} else {
		p.s.store.payments = append(p.s.store.payments, tx)
	}
	return nil
}

type fakeIDGen struct {
	n int
}

func (f *fakeIDGen) NewULIDFromTimestamp(_ time.Time) (string, error) {
	f.n++
	return fmt.Sprintf("id-%03d", f.n), nil
}

func (f *fakeIDGen) ValidateImageFile(_ *multipart.FileHeader) error {
	return nil
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func rentBill(due time.Time) entity.Bill {
	return entity.Bill{
		ID:         "bill-1",
		UserID:     "user-1",
		Name:       "Rent",
		Amount:     1500,
		DueDate:    due,
		Frequency:  string(entity.BillFrequencyMonthly),
		CategoryID: "cat-housing",
	}
}

func TestPayAdvancesDueDateAndRecordsExpense(t *testing.T) {
	due := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeBillStore(rentBill(due))
	svc := NewBillService(newTestLogger(), store, &fakeIDGen{})

	paid, lastPayment, err := svc.Pay(context.Background(), bill.PayBillRequest{
		ID:          "bill-1",
		UserID:      "user-1",
		PaymentDate: "2025-06-14T00:00:00Z",
	})
	require.NoError(t, err)

	wantDue := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, paid.DueDate.Equal(wantDue))
	assert.True(t, store.bills["bill-1"].DueDate.Equal(wantDue))
	assert.Equal(t, "2025-06-14T00:00:00Z", lastPayment)

	require.Len(t, store.payments, 1)
	payment := store.payments[0]
	assert.Equal(t, "user-1", payment.UserID)
	assert.Equal(t, 1500.0, payment.Amount)
	assert.Equal(t, string(entity.TransactionTypeExpense), payment.Type)
	assert.Equal(t, "bill-1", payment.BillID)
	assert.Equal(t, "cat-housing", payment.CategoryID)
	assert.Equal(t, "Payment for Rent", payment.Description)
	assert.True(t, payment.Date.Equal(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
}

func TestPaySkipTransaction(t *testing.T) {
	due := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeBillStore(rentBill(due))
	svc := NewBillService(newTestLogger(), store, &fakeIDGen{})

	_, _, err := svc.Pay(context.Background(), bill.PayBillRequest{
		ID:              "bill-1",
		UserID:          "user-1",
		SkipTransaction: true,
	})
	require.NoError(t, err)

	assert.True(t, store.bills["bill-1"].DueDate.After(due))
	assert.Empty(t, store.payments)
}

func TestPayRollsBackWhenPaymentInsertFails(t *testing.T) {
	due := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeBillStore(rentBill(due))
	store.createPaymentErr = errors.New("insert failed")
	svc := NewBillService(newTestLogger(), store, &fakeIDGen{})

	_, _, err := svc.Pay(context.Background(), bill.PayBillRequest{
		ID:     "bill-1",
		UserID: "user-1",
	})
	require.Error(t, err)

	// The due-date advance never lands without its payment record.
	assert.True(t, store.bills["bill-1"].DueDate.Equal(due))
	assert.Empty(t, store.payments)
}

func TestPayValidation(t *testing.T) {
	store := newFakeBillStore(rentBill(time.Now()))
	svc := NewBillService(newTestLogger(), store, &fakeIDGen{})

	_, _, err := svc.Pay(context.Background(), bill.PayBillRequest{
		ID:          "bill-1",
		UserID:      "user-1",
		PaymentDate: "yesterday",
	})
	assert.ErrorIs(t, err, bill.ErrInvalidPaymentDate)

	_, _, err = svc.Pay(context.Background(), bill.PayBillRequest{
		ID:     "bill-1",
		UserID: "user-2",
	})
	assert.ErrorIs(t, err, bill.ErrBillNotOwned)

	_, _, err = svc.Pay(context.Background(), bill.PayBillRequest{
		ID:     "missing",
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, bill.ErrBillNotFound)
}

func TestListWithStatus(t *testing.T) {
	now := time.Now()
	store := newFakeBillStore(
		entity.Bill{ID: "late", UserID: "user-1", Name: "Power", DueDate: now.AddDate(0, 0, -3), Frequency: "monthly"},
		entity.Bill{ID: "soon", UserID: "user-1", Name: "Water", DueDate: now.AddDate(0, 0, 5), Frequency: "monthly"},
	)
	svc := NewBillService(newTestLogger(), store, &fakeIDGen{})

	all, err := svc.ListWithStatus(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	overdue, err := svc.ListWithStatus(context.Background(), "user-1", "overdue")
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "late", overdue[0].ID)
	assert.Equal(t, entity.BillStatusOverdue, overdue[0].Status)

	// "paid" is a legal filter value that no stored bill can ever match.
	paid, err := svc.ListWithStatus(context.Background(), "user-1", "paid")
	require.NoError(t, err)
	assert.Empty(t, paid)

	_, err = svc.ListWithStatus(context.Background(), "user-1", "bogus")
	assert.ErrorIs(t, err, bill.ErrInvalidStatusFilter)
}

func TestCreateBillValidation(t *testing.T) {
	store := newFakeBillStore()
	svc := NewBillService(newTestLogger(), store, &fakeIDGen{})

	err := svc.CreateBill(context.Background(), bill.CreateBillRequest{
		UserID:    "user-1",
		Name:      "Gym",
		Amount:    30,
		DueDate:   "2025-07-01T00:00:00Z",
		Frequency: "fortnightly",
	})
	assert.ErrorIs(t, err, bill.ErrInvalidFrequency)

	err = svc.CreateBill(context.Background(), bill.CreateBillRequest{
		UserID:    "user-1",
		Name:      "Gym",
		Amount:    30,
		DueDate:   "July 1st",
		Frequency: "monthly",
	})
	assert.ErrorIs(t, err, bill.ErrInvalidDueDate)

	err = svc.CreateBill(context.Background(), bill.CreateBillRequest{
		UserID:    "user-1",
		Name:      "Gym",
		Amount:    30,
		DueDate:   "2025-07-01T00:00:00Z",
		Frequency: "monthly",
	})
	require.NoError(t, err)
	assert.Len(t, store.bills, 1)
}

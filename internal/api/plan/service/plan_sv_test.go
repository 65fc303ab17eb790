package planService

import (
	"BudgetGolang/internal/api/plan"
	planRepository "BudgetGolang/internal/api/plan/repository"
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

// fakePlanStore mimics the repository's transaction contract: a tx client
// works on a staged copy that only lands on Commit.
type fakePlanStore struct {
	items      []entity.PlanItem
	createErrs map[string]error
}

func newFakePlanStore(items ...entity.PlanItem) *fakePlanStore {
	return &fakePlanStore{
		items:      items,
		createErrs: make(map[string]error),
	}
}

func (f *fakePlanStore) NewClient(tx bool) (planRepository.Client, error) {
	session := &planSession{store: f, tx: tx}
	if tx {
		session.staged = append([]entity.PlanItem(nil), f.items...)
	}

	commit := func() error { return nil }
	if tx {
		commit = func() error {
			f.items = session.staged
			return nil
		}
	}

	return planRepository.Client{
		PlanItem: session,
		Commit:   commit,
		Rollback: func() error { return nil },
	}, nil
}

type planSession struct {
	store  *fakePlanStore
	tx     bool
	staged []entity.PlanItem
}

func (s *planSession) list() *[]entity.PlanItem {
	if s.tx {
		return &s.staged
	}
	return &s.store.items
}

func (s *planSession) Create(_ context.Context, item entity.PlanItem) error {
	if err := s.store.createErrs[item.ID]; err != nil {
		return err
	}
	*s.list() = append(*s.list(), item)
	return nil
}

func (s *planSession) GetByID(_ context.Context, id string) (entity.PlanItem, error) {
	for _, item := range *s.list() {
		if item.ID == id {
			return item, nil
		}
	}
	return entity.PlanItem{}, plan.ErrPlanItemNotFound
}

func (s *planSession) GetByUserAndType(_ context.Context, userID string, planType string) ([]entity.PlanItem, error) {
	var result []entity.PlanItem
	for _, item := range *s.list() {
		if item.UserID == userID && item.PlanType == planType {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *planSession) GetSavingsByUserID(_ context.Context, userID string) ([]entity.PlanItem, error) {
	var result []entity.PlanItem
	for _, item := range *s.list() {
		if item.UserID == userID && item.ItemType == string(entity.PlanItemTypeSavings) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *planSession) Update(_ context.Context, item entity.PlanItem) error {
	items := s.list()
	for i := range *items {
		if (*items)[i].ID == item.ID {
			(*items)[i] = item
			return nil
		}
	}
	return plan.ErrPlanItemNotFound
}

func (s *planSession) Delete(_ context.Context, id string) error {
	items := s.list()
	for i := range *items {
		if (*items)[i].ID == id {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return nil
		}
	}
	return plan.ErrPlanItemNotFound
}

func (s *planSession) DeleteByUserAndType(_ context.Context, userID string, planType string) error {
	items := s.list()
	kept := (*items)[:0]
	for _, item := range *items {
		if item.UserID == userID && item.PlanType == planType {
			continue
		}
		kept = append(kept, item)
	}
	*items = kept
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

func TestGetPlanGroupsItems(t *testing.T) {
	store := newFakePlanStore(
		entity.PlanItem{ID: "a", UserID: "user-1", PlanType: "monthly", ItemType: "income", Description: "Salary", Amount: 5000},
		entity.PlanItem{ID: "b", UserID: "user-1", PlanType: "monthly", ItemType: "expense", Description: "Rent", Amount: 1500},
		entity.PlanItem{ID: "c", UserID: "user-1", PlanType: "monthly", ItemType: "savings", Description: "Pension", Amount: 800},
		entity.PlanItem{ID: "d", UserID: "user-1", PlanType: "weekly", ItemType: "expense", Description: "Groceries", Amount: 120},
	)
	svc := NewPlanService(newTestLogger(), store, &fakeIDGen{})

	view, err := svc.GetPlan(context.Background(), "user-1", "monthly")
	require.NoError(t, err)

	assert.Len(t, view.Income, 1)
	assert.Len(t, view.Expenses, 1)
	assert.Len(t, view.Savings, 1)
	assert.Equal(t, 5000.0, view.TotalIncome)
	assert.Equal(t, 1500.0, view.TotalExpense)
	assert.Equal(t, 800.0, view.TotalSavings)
	assert.Equal(t, 2700.0, view.Remaining)

	_, err = svc.GetPlan(context.Background(), "user-1", "yearly")
	assert.ErrorIs(t, err, plan.ErrInvalidPlanType)
}

func TestReplaceSwapsItems(t *testing.T) {
	store := newFakePlanStore(
		entity.PlanItem{ID: "old-1", UserID: "user-1", PlanType: "monthly", ItemType: "expense", Description: "Rent", Amount: 1500},
		entity.PlanItem{ID: "old-2", UserID: "user-1", PlanType: "monthly", ItemType: "income", Description: "Salary", Amount: 4000},
		entity.PlanItem{ID: "other", UserID: "user-1", PlanType: "weekly", ItemType: "expense", Description: "Groceries", Amount: 120},
	)
	svc := NewPlanService(newTestLogger(), store, &fakeIDGen{})

	view, err := svc.Replace(context.Background(), plan.ReplacePlanRequest{
		UserID:   "user-1",
		PlanType: "monthly",
		Items: []plan.PlanItemRequest{
			{Description: "Salary", Amount: 5000, ItemType: "income"},
			{Description: "Rent", Amount: 1600, ItemType: "expense"},
			{Description: "Pension", Amount: 700, ItemType: "savings"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 5000.0, view.TotalIncome)
	assert.Equal(t, 1600.0, view.TotalExpense)
	assert.Equal(t, 700.0, view.TotalSavings)
	assert.Equal(t, 2700.0, view.Remaining)

	monthly, err := store.NewClient(false)
	require.NoError(t, err)
	items, err := monthly.PlanItem.GetByUserAndType(context.Background(), "user-1", "monthly")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	for _, item := range items {
		assert.NotContains(t, []string{"old-1", "old-2"}, item.ID)
	}

	// The weekly plan is untouched by a monthly replace.
	weekly, err := monthly.PlanItem.GetByUserAndType(context.Background(), "user-1", "weekly")
	require.NoError(t, err)
	assert.Len(t, weekly, 1)
}

func TestReplaceRollsBackOnFailure(t *testing.T) {
	store := newFakePlanStore(
		entity.PlanItem{ID: "old-1", UserID: "user-1", PlanType: "monthly", ItemType: "expense", Description: "Rent", Amount: 1500},
	)
	store.createErrs["id-002"] = errors.New("insert failed")
	svc := NewPlanService(newTestLogger(), store, &fakeIDGen{})

	_, err := svc.Replace(context.Background(), plan.ReplacePlanRequest{
		UserID:   "user-1",
		PlanType: "monthly",
		Items: []plan.PlanItemRequest{
			{Description: "Salary", Amount: 5000, ItemType: "income"},
			{Description: "Rent", Amount: 1600, ItemType: "expense"},
		},
	})
	require.Error(t, err)

	// Nothing committed: the old plan survives intact.
	require.Len(t, store.items, 1)
	assert.Equal(t, "old-1", store.items[0].ID)
}

func TestReplaceValidation(t *testing.T) {
	store := newFakePlanStore(
		entity.PlanItem{ID: "old-1", UserID: "user-1", PlanType: "monthly", ItemType: "expense", Description: "Rent", Amount: 1500},
	)
	svc := NewPlanService(newTestLogger(), store, &fakeIDGen{})

	_, err := svc.Replace(context.Background(), plan.ReplacePlanRequest{
		UserID:   "user-1",
		PlanType: "yearly",
	})
	assert.ErrorIs(t, err, plan.ErrInvalidPlanType)

	_, err = svc.Replace(context.Background(), plan.ReplacePlanRequest{
		UserID:   "user-1",
		PlanType: "monthly",
		Items: []plan.PlanItemRequest{
			{Description: "Oops", Amount: 10, ItemType: "transfer"},
		},
	})
	assert.ErrorIs(t, err, plan.ErrInvalidItemType)

	assert.Len(t, store.items, 1)
}

func TestReplaceWithEmptySet(t *testing.T) {
	store := newFakePlanStore(
		entity.PlanItem{ID: "old-1", UserID: "user-1", PlanType: "daily", ItemType: "expense", Description: "Coffee", Amount: 4},
	)
	svc := NewPlanService(newTestLogger(), store, &fakeIDGen{})

	view, err := svc.Replace(context.Background(), plan.ReplacePlanRequest{
		UserID:   "user-1",
		PlanType: "daily",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.Remaining)
	assert.Empty(t, store.items)
}

func TestUpdateItemOwnership(t *testing.T) {
	store := newFakePlanStore(
		entity.PlanItem{ID: "item-1", UserID: "user-1", PlanType: "monthly", ItemType: "expense", Description: "Rent", Amount: 1500},
	)
	svc := NewPlanService(newTestLogger(), store, &fakeIDGen{})

	err := svc.UpdateItem(context.Background(), plan.UpdatePlanItemRequest{
		ID:          "item-1",
		UserID:      "user-2",
		ItemType:    "expense",
		Description: "Rent",
		Amount:      1,
	})
	assert.ErrorIs(t, err, plan.ErrPlanItemNotOwned)

	err = svc.DeleteItem(context.Background(), "item-1", "user-2")
	assert.ErrorIs(t, err, plan.ErrPlanItemNotOwned)

	err = svc.DeleteItem(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, plan.ErrPlanItemNotFound)
}

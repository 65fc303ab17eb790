package goalService

import (
	"BudgetGolang/internal/api/goal"
	goalRepository "BudgetGolang/internal/api/goal/repository"
	"BudgetGolang/internal/entity"
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

type fakeGoalStore struct {
	goals map[string]entity.SavingsGoal
}

func newFakeGoalStore(goals ...entity.SavingsGoal) *fakeGoalStore {
	store := &fakeGoalStore{goals: make(map[string]entity.SavingsGoal)}
	for _, g := range goals {
		store.goals[g.ID] = g
	}
	return store
}

func (f *fakeGoalStore) NewClient(tx bool) (goalRepository.Client, error) {
	return goalRepository.Client{
		Goal:     f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeGoalStore) Create(_ context.Context, g entity.SavingsGoal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalStore) GetByID(_ context.Context, id string) (entity.SavingsGoal, error) {
	g, ok := f.goals[id]
	if !ok {
		return entity.SavingsGoal{}, goal.ErrGoalNotFound
	}
	return g, nil
}

func (f *fakeGoalStore) GetByUserID(_ context.Context, userID string) ([]entity.SavingsGoal, error) {
	var result []entity.SavingsGoal
	for _, g := range f.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (f *fakeGoalStore) Update(_ context.Context, g entity.SavingsGoal) error {
	if _, ok := f.goals[g.ID]; !ok {
		return goal.ErrGoalNotFound
	}
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoalStore) Delete(_ context.Context, id string) error {
	if _, ok := f.goals[id]; !ok {
		return goal.ErrGoalNotFound
	}
	delete(f.goals, id)
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

func TestAddFunds(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		target        float64
		completed     bool
		amount        float64
		wantErr       error
		wantCurrent   float64
		wantCompleted bool
	}{
		{
			name:        "partial funding stays open",
			current:     200,
			target:      1000,
			amount:      300,
			wantCurrent: 500,
		},
		{
			name:          "reaching the target completes",
			current:       900,
			target:        1000,
			amount:        100,
			wantCurrent:   1000,
			wantCompleted: true,
		},
		{
			name:          "passing the target completes",
			current:       900,
			target:        1000,
			amount:        500,
			wantCurrent:   1400,
			wantCompleted: true,
		},
		{
			name:    "zero amount rejected",
			current: 200,
			target:  1000,
			amount:  0,
			wantErr: goal.ErrInvalidFundsAmount,
		},
		{
			name:    "negative amount rejected",
			current: 200,
			target:  1000,
			amount:  -50,
			wantErr: goal.ErrInvalidFundsAmount,
		},
		{
			name:      "completed goal refuses funds",
			current:   1000,
			target:    1000,
			completed: true,
			amount:    100,
			wantErr:   goal.ErrGoalAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeGoalStore(entity.SavingsGoal{
				ID:            "goal-1",
				UserID:        "user-1",
				Name:          "Emergency fund",
				TargetAmount:  tt.target,
				CurrentAmount: tt.current,
				Completed:     tt.completed,
			})
			svc := NewGoalService(newTestLogger(), store, &fakeIDGen{})

			result, err := svc.AddFunds(context.Background(), goal.AddFundsRequest{
				ID:     "goal-1",
				UserID: "user-1",
				Amount: tt.amount,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				stored := store.goals["goal-1"]
				assert.Equal(t, tt.current, stored.CurrentAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrent, result.CurrentAmount)
			assert.Equal(t, tt.wantCompleted, result.Completed)
			if tt.wantCompleted {
				assert.Equal(t, 100.0, result.Percentage)
			}

			stored := store.goals["goal-1"]
			assert.Equal(t, tt.wantCurrent, stored.CurrentAmount)
			assert.Equal(t, tt.wantCompleted, stored.Completed)
		})
	}
}

func TestAddFundsOwnership(t *testing.T) {
	store := newFakeGoalStore(entity.SavingsGoal{
		ID:           "goal-1",
		UserID:       "user-1",
		TargetAmount: 1000,
	})
	svc := NewGoalService(newTestLogger(), store, &fakeIDGen{})

	_, err := svc.AddFunds(context.Background(), goal.AddFundsRequest{
		ID:     "goal-1",
		UserID: "someone-else",
		Amount: 100,
	})
	assert.ErrorIs(t, err, goal.ErrGoalNotOwned)

	_, err = svc.AddFunds(context.Background(), goal.AddFundsRequest{
		ID:     "missing",
		UserID: "user-1",
		Amount: 100,
	})
	assert.ErrorIs(t, err, goal.ErrGoalNotFound)
}

func TestComplete(t *testing.T) {
	store := newFakeGoalStore(entity.SavingsGoal{
		ID:            "goal-1",
		UserID:        "user-1",
		TargetAmount:  1000,
		CurrentAmount: 250,
	})
	svc := NewGoalService(newTestLogger(), store, &fakeIDGen{})

	// Completing below target is allowed: the flag is a decision, not a
	// consequence of the numbers.
	result, err := svc.Complete(context.Background(), "goal-1", "user-1")
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Equal(t, 250.0, result.CurrentAmount)
	assert.True(t, store.goals["goal-1"].Completed)

	_, err = svc.Complete(context.Background(), "goal-1", "user-1")
	assert.ErrorIs(t, err, goal.ErrGoalAlreadyCompleted)
}

func TestCreateGoal(t *testing.T) {
	store := newFakeGoalStore()
	svc := NewGoalService(newTestLogger(), store, &fakeIDGen{})

	err := svc.CreateGoal(context.Background(), goal.CreateGoalRequest{
		UserID:       "user-1",
		Name:         "Vacation",
		TargetAmount: 2500,
		TargetDate:   "2026-12-31T00:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, store.goals, 1)

	created := store.goals["id-001"]
	assert.Equal(t, "Vacation", created.Name)
	assert.False(t, created.Completed)
	assert.Equal(t, 0.0, created.CurrentAmount)
	require.NotNil(t, created.TargetDate)
	assert.Equal(t, 2026, created.TargetDate.Year())

	err = svc.CreateGoal(context.Background(), goal.CreateGoalRequest{
		UserID:       "user-1",
		Name:         "Broken",
		TargetAmount: 100,
		TargetDate:   "next year",
	})
	assert.ErrorIs(t, err, goal.ErrInvalidTargetDate)
	assert.Len(t, store.goals, 1)
}

func TestGetGoalsProgress(t *testing.T) {
	target := time.Now().AddDate(0, 0, 10)
	store := newFakeGoalStore(entity.SavingsGoal{
		ID:            "goal-1",
		UserID:        "user-1",
		TargetAmount:  1000,
		CurrentAmount: 400,
		TargetDate:    &target,
	})
	svc := NewGoalService(newTestLogger(), store, &fakeIDGen{})

	goals, err := svc.GetGoals(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 40.0, goals[0].Percentage)
	require.NotNil(t, goals[0].DaysRemaining)
	assert.InDelta(t, 10, *goals[0].DaysRemaining, 1)
}

package categoryService

import (
	"BudgetGolang/internal/api/category"
	categoryRepository "BudgetGolang/internal/api/category/repository"
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

type fakeCategoryStore struct {
	categories map[string]entity.Category
	txRefs     map[string]int
	billRefs   map[string]int
}

func newFakeCategoryStore(categories ...entity.Category) *fakeCategoryStore {
	store := &fakeCategoryStore{
		categories: make(map[string]entity.Category),
		txRefs:     make(map[string]int),
		billRefs:   make(map[string]int),
	}
	for _, c := range categories {
		store.categories[c.ID] = c
	}
	return store
}

func (f *fakeCategoryStore) NewClient(tx bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Category: f,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, c entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id string) (entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryStore) GetForUser(_ context.Context, userID string) ([]entity.Category, error) {
	var result []entity.Category
	for _, c := range f.categories {
		if c.IsDefault || c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, c entity.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryStore) CountTransactionReferences(_ context.Context, categoryID string) (int, error) {
	return f.txRefs[categoryID], nil
}

func (f *fakeCategoryStore) CountBillReferences(_ context.Context, categoryID string) (int, error) {
	return f.billRefs[categoryID], nil
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

func TestCreateCategory(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(newTestLogger(), store, &fakeIDGen{})

	err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		UserID: "user-1",
		Name:   "Groceries",
		Type:   "expense",
	})
	require.NoError(t, err)
	require.Len(t, store.categories, 1)

	// User-created categories are never default, whatever the caller sends.
	created := store.categories["id-001"]
	assert.False(t, created.IsDefault)
	assert.Equal(t, "user-1", created.UserID)

	err = svc.CreateCategory(context.Background(), category.CreateCategoryRequest{
		UserID: "user-1",
		Name:   "Broken",
		Type:   "transfer",
	})
	assert.ErrorIs(t, err, category.ErrInvalidCategoryType)
	assert.Len(t, store.categories, 1)
}

func TestGetCategoryByIDVisibility(t *testing.T) {
	store := newFakeCategoryStore(
		entity.Category{ID: "default-food", Name: "Food", Type: "expense", IsDefault: true},
		entity.Category{ID: "cat-1", UserID: "user-1", Name: "Hobbies", Type: "expense"},
	)
	svc := NewCategoryService(newTestLogger(), store, &fakeIDGen{})

	// Defaults are shared across users.
	got, err := svc.GetCategoryByID(context.Background(), "default-food", "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Name)

	_, err = svc.GetCategoryByID(context.Background(), "cat-1", "user-2")
	assert.ErrorIs(t, err, category.ErrCategoryNotOwned)

	_, err = svc.GetCategoryByID(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestUpdateCategoryGuards(t *testing.T) {
	store := newFakeCategoryStore(
		entity.Category{ID: "default-food", Name: "Food", Type: "expense", IsDefault: true},
		entity.Category{ID: "cat-1", UserID: "user-1", Name: "Hobbies", Type: "expense"},
	)
	svc := NewCategoryService(newTestLogger(), store, &fakeIDGen{})

	err := svc.UpdateCategory(context.Background(), category.UpdateCategoryRequest{
		ID:     "default-food",
		UserID: "user-1",
		Name:   "Renamed",
		Type:   "expense",
	})
	assert.ErrorIs(t, err, category.ErrDefaultCategoryImmutable)
	assert.Equal(t, "Food", store.categories["default-food"].Name)

	err = svc.UpdateCategory(context.Background(), category.UpdateCategoryRequest{
		ID:     "cat-1",
		UserID: "user-2",
		Name:   "Stolen",
		Type:   "expense",
	})
	assert.ErrorIs(t, err, category.ErrCategoryNotOwned)

	err = svc.UpdateCategory(context.Background(), category.UpdateCategoryRequest{
		ID:     "cat-1",
		UserID: "user-1",
		Name:   "Crafts",
		Type:   "expense",
	})
	require.NoError(t, err)
	assert.Equal(t, "Crafts", store.categories["cat-1"].Name)
}

func TestDeleteCategory(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		userID   string
		txRefs   int
		billRefs int
		wantErr  error
	}{
		{"default is immutable", "default-food", "user-1", 0, 0, category.ErrDefaultCategoryImmutable},
		{"foreign category is not owned", "cat-1", "user-2", 0, 0, category.ErrCategoryNotOwned},
		{"referenced by transactions", "cat-1", "user-1", 3, 0, category.ErrCategoryInUse},
		{"referenced by bills", "cat-1", "user-1", 0, 1, category.ErrCategoryInUse},
		{"unreferenced deletes cleanly", "cat-1", "user-1", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeCategoryStore(
				entity.Category{ID: "default-food", Name: "Food", Type: "expense", IsDefault: true},
				entity.Category{ID: "cat-1", UserID: "user-1", Name: "Hobbies", Type: "expense"},
			)
			store.txRefs["cat-1"] = tt.txRefs
			store.billRefs["cat-1"] = tt.billRefs
			svc := NewCategoryService(newTestLogger(), store, &fakeIDGen{})

			err := svc.DeleteCategory(context.Background(), tt.id, tt.userID)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, store.categories, tt.id)
				return
			}

			require.NoError(t, err)
			assert.NotContains(t, store.categories, tt.id)
		})
	}
}

package budgetRepository

import (
	"BudgetGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Budget: &budgetRepository{q: sqlExecutor, log: r.log},
		Commit: commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Budget interface {
		Create(c context.Context, budget entity.Budget) error
		GetByID(c context.Context, id string) (entity.Budget, error)
		GetByUserID(c context.Context, userID string) ([]entity.Budget, error)
		GetActive(c context.Context, userID string, timeframe string, at time.Time) (entity.Budget, error)
		Update(c context.Context, budget entity.Budget) error
		Delete(c context.Context, id string) error

		CreateAllocation(c context.Context, allocation entity.CategoryAllocation) error
		GetAllocations(c context.Context, budgetID string) ([]entity.CategoryAllocation, error)
		DeleteAllocations(c context.Context, budgetID string) error
	}

	Commit   func() error
	Rollback func() error
}

type budgetRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

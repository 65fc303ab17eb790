package billRepository

import (
	"BudgetGolang/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
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
		Bill:        &billRepository{q: sqlExecutor, log: r.log},
		Transaction: &paymentRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

// Client couples bill rows with a create-only view of transactions so a
// payment can advance the due date and record its expense atomically.
type Client struct {
	Bill interface {
		Create(c context.Context, bill entity.Bill) error
		GetByID(c context.Context, id string) (entity.Bill, error)
		GetByUserID(c context.Context, userID string) ([]entity.Bill, error)
		Update(c context.Context, bill entity.Bill) error
		Delete(c context.Context, id string) error
	}

	Transaction interface {
		Create(c context.Context, tx entity.Transaction) error
	}

	Commit   func() error
	Rollback func() error
}

type billRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type paymentRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

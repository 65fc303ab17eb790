package billService

import (
	"BudgetGolang/internal/api/bill"
	billRepository "BudgetGolang/internal/api/bill/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// BillWithStatus pairs a stored bill with its derived classification.
type BillWithStatus struct {
	entity.Bill
	Status       entity.BillStatus
	DaysUntilDue int
}

type IBillService interface {
	CreateBill(ctx context.Context, req bill.CreateBillRequest) error
	GetBillByID(ctx context.Context, id string, userID string) (BillWithStatus, error)
	ListWithStatus(ctx context.Context, userID string, statusFilter string) ([]BillWithStatus, error)
	UpdateBill(ctx context.Context, req bill.UpdateBillRequest) error
	DeleteBill(ctx context.Context, id string, userID string) error
	Pay(ctx context.Context, req bill.PayBillRequest) (BillWithStatus, string, error)
}

type billService struct {
	log            *logrus.Logger
	billRepository billRepository.Repository
	utils          utils.IUtils
}

func NewBillService(log *logrus.Logger, br billRepository.Repository, utils utils.IUtils) IBillService {
	return &billService{
		log:            log,
		billRepository: br,
		utils:          utils,
	}
}

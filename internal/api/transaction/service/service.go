package transactionService

import (
	"BudgetGolang/internal/api/transaction"
	categoryRepository "BudgetGolang/internal/api/category/repository"
	transactionRepository "BudgetGolang/internal/api/transaction/repository"
	"BudgetGolang/internal/entity"
	"BudgetGolang/pkg/s3"
	"BudgetGolang/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"mime/multipart"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest, receipt *multipart.FileHeader) error
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	GetTransactions(ctx context.Context, userID string, filter entity.TransactionFilter) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, req transaction.UpdateTransactionRequest, receipt *multipart.FileHeader) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	s3Client              s3.ItfS3
	utils                 utils.IUtils
}

func NewTransactionService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	cr categoryRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		categoryRepository:    cr,
		s3Client:              s3Client,
		utils:                 utils,
	}
}

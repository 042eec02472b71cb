package service

import (
	"context"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	"github.com/healthmoney/healthmoney/internal/domain/expense"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/samber/lo"
)

// ExpenseService registers and lists operating expenses.
type ExpenseService interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	ListExpenses(ctx context.Context) ([]*dto.ExpenseResponse, error)
}

type expenseService struct {
	logger      *logger.Logger
	expenseRepo expense.Repository
}

func NewExpenseService(expenseRepo expense.Repository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		logger:      logger,
		expenseRepo: expenseRepo,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exp, err := req.ToExpense(ctx)
	if err != nil {
		return nil, err
	}

	if err := exp.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, exp); err != nil {
		return nil, err
	}

	return dto.NewExpenseResponse(exp), nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]*dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(expenses, func(exp *expense.Expense, _ int) *dto.ExpenseResponse {
		return dto.NewExpenseResponse(exp)
	}), nil
}

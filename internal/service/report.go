package service

import (
	"context"
	"sort"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	"github.com/healthmoney/healthmoney/internal/domain/expense"
	"github.com/healthmoney/healthmoney/internal/domain/invoice"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/shopspring/decimal"
)

// ReportService summarizes emitted invoice revenue against registered
// expenses.
type ReportService interface {
	FinancialReport(ctx context.Context) (*dto.FinancialReportResponse, error)
}

type reportService struct {
	logger      *logger.Logger
	invoiceRepo invoice.Repository
	expenseRepo expense.Repository
}

func NewReportService(
	invoiceRepo invoice.Repository,
	expenseRepo expense.Repository,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		logger:      logger,
		invoiceRepo: invoiceRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *reportService) FinancialReport(ctx context.Context) (*dto.FinancialReportResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	revenueByCustomer := map[string]decimal.Decimal{}
	for _, inv := range invoices {
		totalRevenue = totalRevenue.Add(inv.TotalAmount)
		revenueByCustomer[inv.CustomerName] = revenueByCustomer[inv.CustomerName].Add(inv.TotalAmount)
	}

	totalExpenses := decimal.Zero
	expensesByCategory := map[string]decimal.Decimal{}
	for _, exp := range expenses {
		totalExpenses = totalExpenses.Add(exp.Amount)
		expensesByCategory[exp.Category] = expensesByCategory[exp.Category].Add(exp.Amount)
	}

	return &dto.FinancialReportResponse{
		TotalRevenue:       totalRevenue,
		TotalExpenses:      totalExpenses,
		Balance:            totalRevenue.Sub(totalExpenses),
		RevenueByCustomer:  sortedCategories(revenueByCustomer),
		ExpensesByCategory: sortedCategories(expensesByCategory),
	}, nil
}

func sortedCategories(amounts map[string]decimal.Decimal) []dto.CategoryAmount {
	categories := make([]dto.CategoryAmount, 0, len(amounts))
	for name, amount := range amounts {
		categories = append(categories, dto.CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

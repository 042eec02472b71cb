package repository

import (
	"github.com/healthmoney/healthmoney/internal/domain/expense"
	"github.com/healthmoney/healthmoney/internal/domain/invoice"
	"github.com/healthmoney/healthmoney/internal/logger"
	"github.com/healthmoney/healthmoney/internal/postgres"
	postgresRepo "github.com/healthmoney/healthmoney/internal/repository/postgres"
)

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(db, logger)
}

func NewExpenseRepository(db *postgres.DB, logger *logger.Logger) expense.Repository {
	return postgresRepo.NewExpenseRepository(db, logger)
}

package app

import (
	"go-sweldo/internal/bootstrap"
	"go-sweldo/internal/compensation"
	"go-sweldo/internal/deduction"
	"go-sweldo/internal/employee"
	"go-sweldo/internal/holiday"
	"go-sweldo/internal/middleware"
	"go-sweldo/internal/payroll"
	"go-sweldo/internal/store"

	"github.com/gin-gonic/gin"
)

func registerModules(
	router *gin.Engine,
	recordStore store.RecordStore,
	legacy compensation.LegacyReader,
	holidays holiday.Service,
	audit bootstrap.AuditLogger,
) {
	lock := middleware.NewPartitionLock()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(recordStore)
	compensationRepo := compensation.NewRepository(recordStore, legacy)
	deductionRepo := deduction.NewRepository(recordStore)
	payrollRepo := payroll.NewRepository(recordStore)

	// --- Services ---
	compensationService := compensation.NewService(compensationRepo)
	ledger := deduction.NewLedger(deductionRepo)
	aggregator := payroll.NewAggregator(compensationRepo, holidays)
	payrollService := payroll.NewService(employeeRepo, aggregator, ledger, payrollRepo, audit)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeRepo)
	compensationHandler := compensation.NewHandler(compensationService)
	deductionHandler := deduction.NewHandler(ledger)
	payrollHandler := payroll.NewHandler(payrollService, lock)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		compensation.RegisterRoutes(api, compensationHandler, lock)
		deduction.RegisterRoutes(api, deductionHandler)
		payroll.RegisterRoutes(api, payrollHandler)
	}
}

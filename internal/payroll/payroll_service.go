package payroll

import (
	"context"
	"math"
	"time"

	"go-sweldo/internal/bootstrap"
	"go-sweldo/internal/deduction"
	"go-sweldo/internal/employee"
	payrollerrors "go-sweldo/internal/payroll/errors"

	"go.uber.org/zap"
)

// amountTolerance absorbs float accumulation noise when checking that a
// per-source breakdown sums to its declared total.
const amountTolerance = 0.005

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	// Generate aggregates the period, applies the requested deductions
	// through the ledger, and persists the summary under its deterministic
	// id. Re-generating the same period overwrites the stored summary.
	Generate(ctx context.Context, start, end time.Time, req GenerateRequest) (*PayrollSummary, error)
	// Delete reverses every deduction the summary references, then removes
	// it. Individual reversal failures are logged and skipped so a summary
	// can always be deleted.
	Delete(ctx context.Context, employeeID string, start, end time.Time) error
	GetSummaries(ctx context.Context, employeeID string, year, month int) ([]PayrollSummary, error)
}

type service struct {
	employees  employee.Repository
	aggregator *Aggregator
	ledger     deduction.Ledger
	repo       Repository
	audit      bootstrap.AuditLogger
	now        func() time.Time
}

func NewService(
	employees employee.Repository,
	aggregator *Aggregator,
	ledger deduction.Ledger,
	repo Repository,
	audit bootstrap.AuditLogger,
) Service {
	return &service{
		employees:  employees,
		aggregator: aggregator,
		ledger:     ledger,
		repo:       repo,
		audit:      audit,
		now:        time.Now,
	}
}

func sumAmounts(items []SourceAmount) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount
	}
	return total
}

func matches(declared, breakdown float64) bool {
	return math.Abs(declared-breakdown) <= amountTolerance
}

func orDefault(requested *float64, fallback float64) float64 {
	if requested != nil {
		return *requested
	}
	return fallback
}

func (s *service) Generate(ctx context.Context, start, end time.Time, req GenerateRequest) (*PayrollSummary, error) {
	if start.After(end) {
		return nil, payrollerrors.ErrInvalidDateRange
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, payrollerrors.ErrEmployeeNotFound
	}

	totals, err := s.aggregator.AggregatePeriod(ctx, emp, start, end)
	if err != nil {
		return nil, err
	}

	deductions := Deductions{
		SSS:                   orDefault(req.SSS, emp.SSS),
		PhilHealth:            orDefault(req.PhilHealth, emp.PhilHealth),
		PagIbig:               orDefault(req.PagIbig, emp.PagIbig),
		CashAdvanceDeductions: req.CashAdvanceDeductions,
		ShortDeductions:       req.ShortDeductions,
		LoanDeductions:        req.LoanDeductions,
		Others:                req.Others,
	}

	// The caller's per-source breakdown is trusted for the split but must
	// reconcile with the declared totals before any balance is touched.
	if !matches(deductions.CashAdvanceDeductions, sumAmounts(req.CashAdvances)) ||
		!matches(deductions.ShortDeductions, sumAmounts(req.Shorts)) ||
		!matches(deductions.LoanDeductions, sumAmounts(req.Loans)) {
		return nil, payrollerrors.ErrDeductionMismatch
	}

	summary := &PayrollSummary{
		ID:                   SummaryID(req.EmployeeID, start, end),
		EmployeeID:           req.EmployeeID,
		EmployeeName:         emp.Name,
		StartDate:            start,
		EndDate:              end,
		DaysWorked:           totals.DaysWorked,
		Absences:             totals.Absences,
		BasicPay:             totals.TotalBasicPay,
		Overtime:             totals.TotalOvertime,
		UndertimeDeduction:   totals.TotalUndertimeDeduction,
		LateDeduction:        totals.TotalLateDeduction,
		HolidayBonus:         totals.TotalHolidayBonus,
		NightDifferentialPay: totals.TotalNightDiffPay,
		LeavePay:             totals.TotalLeavePay,
		GrossPay:             totals.TotalGrossPay,
		Deductions:           deductions,
		DayType:              totals.DayType,
		LeaveType:            totals.LeaveType,
		GeneratedAt:          s.now().UTC(),
	}

	for _, item := range req.CashAdvances {
		if _, err := s.ledger.ApplyCashAdvance(ctx, req.EmployeeID, item.ID, end, item.Amount); err != nil {
			s.rollbackApplied(ctx, summary)
			return nil, err
		}
		summary.CashAdvanceIDs = append(summary.CashAdvanceIDs, item.ID)
		summary.CashAdvanceBreakdown = append(summary.CashAdvanceBreakdown, SourceRef(item))
	}
	for _, item := range req.Shorts {
		if _, err := s.ledger.ApplyShort(ctx, req.EmployeeID, item.ID, end, item.Amount); err != nil {
			s.rollbackApplied(ctx, summary)
			return nil, err
		}
		summary.ShortIDs = append(summary.ShortIDs, item.ID)
		summary.ShortBreakdown = append(summary.ShortBreakdown, SourceRef(item))
	}
	for _, item := range req.Loans {
		deductionID, err := s.ledger.ApplyLoan(ctx, req.EmployeeID, item.ID, end, item.Amount)
		if err != nil {
			s.rollbackApplied(ctx, summary)
			return nil, err
		}
		summary.LoanDeductionIDs = append(summary.LoanDeductionIDs, LoanDeductionRef{
			LoanID:      item.ID,
			DeductionID: deductionID,
			Amount:      item.Amount,
		})
	}

	summary.NetPay = summary.GrossPay - summary.Deductions.Total()

	if err := s.upsertSummary(ctx, summary); err != nil {
		s.rollbackApplied(ctx, summary)
		return nil, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_GENERATED",
		Message: "payroll summary generated",
		Meta: map[string]any{
			"summaryId":  summary.ID,
			"employeeId": summary.EmployeeID,
			"netPay":     summary.NetPay,
		},
	})
	return summary, nil
}

// rollbackApplied reverses the applications already recorded on a summary
// that will never be persisted. Once Generate fails, no stored summary
// references those draw-downs, so leaving them in place would strand
// balance changes nothing can ever reverse.
func (s *service) rollbackApplied(ctx context.Context, summary *PayrollSummary) {
	asOf := summary.EndDate
	employeeID := summary.EmployeeID

	for _, ref := range summary.CashAdvanceBreakdown {
		if err := s.ledger.ReverseCashAdvance(ctx, employeeID, ref.ID, asOf, ref.Amount); err != nil {
			zap.L().Warn("cash advance rollback skipped",
				zap.String("employeeId", employeeID),
				zap.String("sourceId", ref.ID),
				zap.Error(err))
		}
	}
	for _, ref := range summary.ShortBreakdown {
		if err := s.ledger.ReverseShort(ctx, employeeID, ref.ID, asOf, ref.Amount); err != nil {
			zap.L().Warn("short rollback skipped",
				zap.String("employeeId", employeeID),
				zap.String("sourceId", ref.ID),
				zap.Error(err))
		}
	}
	for _, ref := range summary.LoanDeductionIDs {
		if err := s.ledger.ReverseLoan(ctx, employeeID, ref.LoanID, ref.DeductionID, asOf); err != nil {
			zap.L().Warn("loan rollback skipped",
				zap.String("employeeId", employeeID),
				zap.String("loanId", ref.LoanID),
				zap.String("deductionId", ref.DeductionID),
				zap.Error(err))
		}
	}
}

// upsertSummary writes into the END month's partition, replacing any
// summary with the same deterministic id.
func (s *service) upsertSummary(ctx context.Context, summary *PayrollSummary) error {
	year, month := summary.EndDate.Year(), int(summary.EndDate.Month())

	summaries, err := s.repo.LoadSummaries(ctx, summary.EmployeeID, year, month)
	if err != nil {
		return err
	}

	replaced := false
	for i := range summaries {
		if summaries[i].ID == summary.ID {
			summaries[i] = *summary
			replaced = true
			break
		}
	}
	if !replaced {
		summaries = append(summaries, *summary)
	}

	return s.repo.SaveSummaries(ctx, summary.EmployeeID, year, month, summaries)
}

func (s *service) Delete(ctx context.Context, employeeID string, start, end time.Time) error {
	year, month := end.Year(), int(end.Month())
	id := SummaryID(employeeID, start, end)

	summaries, err := s.repo.LoadSummaries(ctx, employeeID, year, month)
	if err != nil {
		return err
	}

	idx := -1
	for i := range summaries {
		if summaries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return payrollerrors.ErrPayrollNotFound
	}
	summary := summaries[idx]

	s.reverseDeductions(ctx, &summary)

	remaining := append(summaries[:idx:idx], summaries[idx+1:]...)
	if err := s.repo.SaveSummaries(ctx, employeeID, year, month, remaining); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_DELETED",
		Message: "payroll summary deleted",
		Meta: map[string]any{
			"summaryId":  summary.ID,
			"employeeId": summary.EmployeeID,
		},
	})
	return nil
}

// reverseDeductions undoes every application the summary references.
// Failures are logged and skipped: blocking the deletion would strand a
// summary that can never be removed, which is worse than a stale balance.
func (s *service) reverseDeductions(ctx context.Context, summary *PayrollSummary) {
	asOf := summary.EndDate
	employeeID := summary.EmployeeID

	switch {
	case len(summary.CashAdvanceBreakdown) > 0:
		for _, ref := range summary.CashAdvanceBreakdown {
			if err := s.ledger.ReverseCashAdvance(ctx, employeeID, ref.ID, asOf, ref.Amount); err != nil {
				zap.L().Warn("cash advance reversal skipped",
					zap.String("summaryId", summary.ID),
					zap.String("sourceId", ref.ID),
					zap.Error(err))
			}
		}
	case summary.Deductions.CashAdvanceDeductions > 0:
		// legacy summary without a per-source breakdown: fall back to the
		// most recently partially paid advance
		if err := s.ledger.ReverseNearestCashAdvance(ctx, employeeID, asOf, summary.Deductions.CashAdvanceDeductions); err != nil {
			zap.L().Warn("legacy cash advance reversal skipped",
				zap.String("summaryId", summary.ID),
				zap.Error(err))
		}
	}

	switch {
	case len(summary.ShortBreakdown) > 0:
		for _, ref := range summary.ShortBreakdown {
			if err := s.ledger.ReverseShort(ctx, employeeID, ref.ID, asOf, ref.Amount); err != nil {
				zap.L().Warn("short reversal skipped",
					zap.String("summaryId", summary.ID),
					zap.String("sourceId", ref.ID),
					zap.Error(err))
			}
		}
	case summary.Deductions.ShortDeductions > 0:
		if err := s.ledger.ReverseNearestShort(ctx, employeeID, asOf, summary.Deductions.ShortDeductions); err != nil {
			zap.L().Warn("legacy short reversal skipped",
				zap.String("summaryId", summary.ID),
				zap.Error(err))
		}
	}

	for _, ref := range summary.LoanDeductionIDs {
		if err := s.ledger.ReverseLoan(ctx, employeeID, ref.LoanID, ref.DeductionID, asOf); err != nil {
			zap.L().Warn("loan reversal skipped",
				zap.String("summaryId", summary.ID),
				zap.String("loanId", ref.LoanID),
				zap.String("deductionId", ref.DeductionID),
				zap.Error(err))
		}
	}
}

func (s *service) GetSummaries(ctx context.Context, employeeID string, year, month int) ([]PayrollSummary, error) {
	return s.repo.LoadSummaries(ctx, employeeID, year, month)
}

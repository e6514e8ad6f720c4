package deduction

import (
	"context"
	"sort"
	"time"

	deductionerrors "go-sweldo/internal/deduction/errors"

	"github.com/google/uuid"
)

// Lookback windows for locating sources. Sources live in the partition of
// their own date, so a payroll period routinely pays down records written
// months earlier.
const (
	LookbackFullYear = 12
	LookbackPayroll  = 3
)

// Ledger applies and reverses payroll deductions against balance-bearing
// sources. Every operation performs exactly one record write; aggregating
// applied amounts into payroll totals is the caller's job.
//
//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_mock.go -package=mock
type Ledger interface {
	ApplyCashAdvance(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) (*CashAdvance, error)
	ApplyShort(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) (*Short, error)
	// ApplyLoan records the application under a fresh deduction id and
	// returns that id so the payroll summary can reference it exactly.
	ApplyLoan(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) (string, error)

	ReverseCashAdvance(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) error
	ReverseShort(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) error
	ReverseLoan(ctx context.Context, employeeID, loanID, deductionID string, asOf time.Time) error

	// Nearest-match reversals exist only for legacy summaries that predate
	// exact-id tracking: they pick the most recently touched partially paid
	// source. New code paths always reverse by exact id.
	ReverseNearestCashAdvance(ctx context.Context, employeeID string, asOf time.Time, amount float64) error
	ReverseNearestShort(ctx context.Context, employeeID string, asOf time.Time, amount float64) error

	UnpaidCashAdvances(ctx context.Context, employeeID string, asOf time.Time, lookbackMonths int) ([]CashAdvance, error)
	UnpaidShorts(ctx context.Context, employeeID string, asOf time.Time, lookbackMonths int) ([]Short, error)
	ActiveLoans(ctx context.Context, employeeID string, asOf time.Time, lookbackMonths int) ([]Loan, error)
}

type ledger struct {
	repo Repository
	now  func() time.Time
}

func NewLedger(repo Repository) Ledger {
	return &ledger{repo: repo, now: time.Now}
}

type yearMonth struct {
	year  int
	month int
}

// monthsBack enumerates asOf's month plus n prior months, newest first.
func monthsBack(asOf time.Time, n int) []yearMonth {
	months := make([]yearMonth, 0, n+1)
	cursor := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.Local)
	for i := 0; i <= n; i++ {
		months = append(months, yearMonth{cursor.Year(), int(cursor.Month())})
		cursor = cursor.AddDate(0, -1, 0)
	}
	return months
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

// --- Cash advances ---

func (l *ledger) findCashAdvance(ctx context.Context, employeeID, id string, asOf time.Time) ([]CashAdvance, int, yearMonth, error) {
	for _, ym := range monthsBack(asOf, LookbackFullYear) {
		recs, err := l.repo.LoadCashAdvances(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return nil, 0, yearMonth{}, err
		}
		for i := range recs {
			if recs[i].ID == id {
				return recs, i, ym, nil
			}
		}
	}
	return nil, 0, yearMonth{}, deductionerrors.ErrSourceNotFound
}

func (l *ledger) ApplyCashAdvance(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) (*CashAdvance, error) {
	if amount <= 0 {
		return nil, deductionerrors.ErrInvalidAmount
	}

	recs, i, ym, err := l.findCashAdvance(ctx, employeeID, id, asOf)
	if err != nil {
		return nil, err
	}

	recs[i].RemainingUnpaid = max0(recs[i].RemainingUnpaid - amount)
	recs[i].recomputeStatus()
	recs[i].UpdatedAt = l.now().UTC()

	if err := l.repo.SaveCashAdvances(ctx, employeeID, ym.year, ym.month, recs); err != nil {
		return nil, err
	}
	rec := recs[i]
	return &rec, nil
}

func (l *ledger) ReverseCashAdvance(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) error {
	if amount <= 0 {
		return deductionerrors.ErrInvalidAmount
	}

	recs, i, ym, err := l.findCashAdvance(ctx, employeeID, id, asOf)
	if err != nil {
		return err
	}

	recs[i].RemainingUnpaid = capAt(recs[i].RemainingUnpaid+amount, recs[i].Amount)
	recs[i].recomputeStatus()
	// the deduction event itself is being undone, so the record is unpaid
	// again even when the restored remaining rounds to zero
	recs[i].Status = StatusUnpaid
	recs[i].UpdatedAt = l.now().UTC()

	return l.repo.SaveCashAdvances(ctx, employeeID, ym.year, ym.month, recs)
}

func (l *ledger) ReverseNearestCashAdvance(ctx context.Context, employeeID string, asOf time.Time, amount float64) error {
	if amount <= 0 {
		return deductionerrors.ErrInvalidAmount
	}

	// dedupe repartitioned copies first: only a record's most recently
	// touched instance is authoritative, so a stale copy of a record that
	// was never deducted against must not become the reversal target
	type located struct {
		ym   yearMonth
		recs []CashAdvance
		i    int
	}
	latest := make(map[string]located)
	for _, ym := range monthsBack(asOf, LookbackFullYear) {
		recs, err := l.repo.LoadCashAdvances(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return err
		}
		for i := range recs {
			prev, ok := latest[recs[i].ID]
			if !ok || recs[i].UpdatedAt.After(prev.recs[prev.i].UpdatedAt) {
				latest[recs[i].ID] = located{ym, recs, i}
			}
		}
	}

	var best *located
	for _, cand := range latest {
		rec := cand.recs[cand.i]
		if rec.RemainingUnpaid >= rec.Amount {
			continue // never deducted against
		}
		if best == nil || rec.UpdatedAt.After(best.recs[best.i].UpdatedAt) {
			c := cand
			best = &c
		}
	}
	if best == nil {
		return deductionerrors.ErrSourceNotFound
	}

	rec := &best.recs[best.i]
	rec.RemainingUnpaid = capAt(rec.RemainingUnpaid+amount, rec.Amount)
	rec.recomputeStatus()
	rec.Status = StatusUnpaid
	rec.UpdatedAt = l.now().UTC()

	return l.repo.SaveCashAdvances(ctx, employeeID, best.ym.year, best.ym.month, best.recs)
}

func (l *ledger) UnpaidCashAdvances(ctx context.Context, employeeID string, asOf time.Time, lookbackMonths int) ([]CashAdvance, error) {
	// the same logical record can sit in two monthly partitions when an
	// upstream writer repartitioned it by a changed date; keep the most
	// recently touched instance
	latest := make(map[string]CashAdvance)
	for _, ym := range monthsBack(asOf, lookbackMonths) {
		recs, err := l.repo.LoadCashAdvances(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if prev, ok := latest[rec.ID]; !ok || rec.UpdatedAt.After(prev.UpdatedAt) {
				latest[rec.ID] = rec
			}
		}
	}

	var out []CashAdvance
	for _, rec := range latest {
		if rec.Status != StatusUnpaid || rec.RemainingUnpaid <= 0 {
			continue
		}
		if rec.ApprovalStatus != ApprovalApproved {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date.Before(out[b].Date) })
	return out, nil
}

// --- Shorts ---

func (l *ledger) findShort(ctx context.Context, employeeID, id string, asOf time.Time) ([]Short, int, yearMonth, error) {
	for _, ym := range monthsBack(asOf, LookbackFullYear) {
		recs, err := l.repo.LoadShorts(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return nil, 0, yearMonth{}, err
		}
		for i := range recs {
			if recs[i].ID == id {
				return recs, i, ym, nil
			}
		}
	}
	return nil, 0, yearMonth{}, deductionerrors.ErrSourceNotFound
}

func (l *ledger) ApplyShort(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) (*Short, error) {
	if amount <= 0 {
		return nil, deductionerrors.ErrInvalidAmount
	}

	recs, i, ym, err := l.findShort(ctx, employeeID, id, asOf)
	if err != nil {
		return nil, err
	}

	recs[i].RemainingUnpaid = max0(recs[i].RemainingUnpaid - amount)
	recs[i].recomputeStatus()
	recs[i].UpdatedAt = l.now().UTC()

	if err := l.repo.SaveShorts(ctx, employeeID, ym.year, ym.month, recs); err != nil {
		return nil, err
	}
	rec := recs[i]
	return &rec, nil
}

func (l *ledger) ReverseShort(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) error {
	if amount <= 0 {
		return deductionerrors.ErrInvalidAmount
	}

	recs, i, ym, err := l.findShort(ctx, employeeID, id, asOf)
	if err != nil {
		return err
	}

	recs[i].RemainingUnpaid = capAt(recs[i].RemainingUnpaid+amount, recs[i].Amount)
	recs[i].recomputeStatus()
	recs[i].Status = StatusUnpaid
	recs[i].UpdatedAt = l.now().UTC()

	return l.repo.SaveShorts(ctx, employeeID, ym.year, ym.month, recs)
}

func (l *ledger) ReverseNearestShort(ctx context.Context, employeeID string, asOf time.Time, amount float64) error {
	if amount <= 0 {
		return deductionerrors.ErrInvalidAmount
	}

	type located struct {
		ym   yearMonth
		recs []Short
		i    int
	}
	latest := make(map[string]located)
	for _, ym := range monthsBack(asOf, LookbackFullYear) {
		recs, err := l.repo.LoadShorts(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return err
		}
		for i := range recs {
			prev, ok := latest[recs[i].ID]
			if !ok || recs[i].UpdatedAt.After(prev.recs[prev.i].UpdatedAt) {
				latest[recs[i].ID] = located{ym, recs, i}
			}
		}
	}

	var best *located
	for _, cand := range latest {
		rec := cand.recs[cand.i]
		if rec.RemainingUnpaid >= rec.Amount {
			continue
		}
		if best == nil || rec.UpdatedAt.After(best.recs[best.i].UpdatedAt) {
			c := cand
			best = &c
		}
	}
	if best == nil {
		return deductionerrors.ErrSourceNotFound
	}

	rec := &best.recs[best.i]
	rec.RemainingUnpaid = capAt(rec.RemainingUnpaid+amount, rec.Amount)
	rec.recomputeStatus()
	rec.Status = StatusUnpaid
	rec.UpdatedAt = l.now().UTC()

	return l.repo.SaveShorts(ctx, employeeID, best.ym.year, best.ym.month, best.recs)
}

func (l *ledger) UnpaidShorts(ctx context.Context, employeeID string, asOf time.Time, lookbackMonths int) ([]Short, error) {
	latest := make(map[string]Short)
	for _, ym := range monthsBack(asOf, lookbackMonths) {
		recs, err := l.repo.LoadShorts(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if prev, ok := latest[rec.ID]; !ok || rec.UpdatedAt.After(prev.UpdatedAt) {
				latest[rec.ID] = rec
			}
		}
	}

	var out []Short
	for _, rec := range latest {
		if rec.Status != StatusUnpaid || rec.RemainingUnpaid <= 0 {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date.Before(out[b].Date) })
	return out, nil
}

// --- Loans ---

func (l *ledger) findLoan(ctx context.Context, employeeID, id string, asOf time.Time) ([]Loan, int, yearMonth, error) {
	for _, ym := range monthsBack(asOf, LookbackFullYear) {
		recs, err := l.repo.LoadLoans(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return nil, 0, yearMonth{}, err
		}
		for i := range recs {
			if recs[i].ID == id {
				return recs, i, ym, nil
			}
		}
	}
	return nil, 0, yearMonth{}, deductionerrors.ErrSourceNotFound
}

func (l *ledger) ApplyLoan(ctx context.Context, employeeID, id string, asOf time.Time, amount float64) (string, error) {
	if amount <= 0 {
		return "", deductionerrors.ErrInvalidAmount
	}

	recs, i, ym, err := l.findLoan(ctx, employeeID, id, asOf)
	if err != nil {
		return "", err
	}

	now := l.now().UTC()
	deductionID := uuid.New().String()
	if recs[i].Deductions == nil {
		recs[i].Deductions = make(map[string]LoanDeduction)
	}
	recs[i].Deductions[deductionID] = LoanDeduction{
		AmountDeducted: amount,
		DateDeducted:   now,
	}

	recs[i].RemainingBalance = max0(recs[i].RemainingBalance - amount)
	// a loan keeps its workflow status until fully repaid; only the
	// terminal state is derived here
	if recs[i].RemainingBalance <= 0 {
		recs[i].Status = LoanStatusCompleted
	}
	recs[i].UpdatedAt = now

	if err := l.repo.SaveLoans(ctx, employeeID, ym.year, ym.month, recs); err != nil {
		return "", err
	}
	return deductionID, nil
}

func (l *ledger) ReverseLoan(ctx context.Context, employeeID, loanID, deductionID string, asOf time.Time) error {
	recs, i, ym, err := l.findLoan(ctx, employeeID, loanID, asOf)
	if err != nil {
		return err
	}

	entry, ok := recs[i].Deductions[deductionID]
	if !ok {
		return deductionerrors.ErrDeductionEntryNotFound
	}
	delete(recs[i].Deductions, deductionID)

	wasCompleted := recs[i].Status == LoanStatusCompleted
	recs[i].RemainingBalance = capAt(recs[i].RemainingBalance+entry.AmountDeducted, recs[i].Amount)
	if wasCompleted && recs[i].RemainingBalance > 0 {
		recs[i].Status = LoanStatusApproved
	}
	recs[i].UpdatedAt = l.now().UTC()

	return l.repo.SaveLoans(ctx, employeeID, ym.year, ym.month, recs)
}

func (l *ledger) ActiveLoans(ctx context.Context, employeeID string, asOf time.Time, lookbackMonths int) ([]Loan, error) {
	latest := make(map[string]Loan)
	for _, ym := range monthsBack(asOf, lookbackMonths) {
		recs, err := l.repo.LoadLoans(ctx, employeeID, ym.year, ym.month)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if prev, ok := latest[rec.ID]; !ok || rec.UpdatedAt.After(prev.UpdatedAt) {
				latest[rec.ID] = rec
			}
		}
	}

	var out []Loan
	for _, rec := range latest {
		if rec.Status != LoanStatusApproved || rec.RemainingBalance <= 0 {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date.Before(out[b].Date) })
	return out, nil
}

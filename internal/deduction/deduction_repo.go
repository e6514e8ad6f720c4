package deduction

import (
	"context"
	"encoding/json"
	"errors"

	"go-sweldo/internal/store"
)

// Sources are partitioned by their own date's (year, month), not by the
// payroll period that pays them down.
//
//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	LoadCashAdvances(ctx context.Context, employeeID string, year, month int) ([]CashAdvance, error)
	SaveCashAdvances(ctx context.Context, employeeID string, year, month int, recs []CashAdvance) error
	LoadShorts(ctx context.Context, employeeID string, year, month int) ([]Short, error)
	SaveShorts(ctx context.Context, employeeID string, year, month int, recs []Short) error
	LoadLoans(ctx context.Context, employeeID string, year, month int) ([]Loan, error)
	SaveLoans(ctx context.Context, employeeID string, year, month int, recs []Loan) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func loadPartition[T any](ctx context.Context, s store.RecordStore, employeeID string, year, month int, kind store.Kind) ([]T, error) {
	data, err := s.Load(ctx, employeeID, year, month, kind)
	if err != nil {
		if errors.Is(err, store.ErrPartitionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *repository) LoadCashAdvances(ctx context.Context, employeeID string, year, month int) ([]CashAdvance, error) {
	return loadPartition[CashAdvance](ctx, r.store, employeeID, year, month, store.KindCashAdvance)
}

func (r *repository) SaveCashAdvances(ctx context.Context, employeeID string, year, month int, recs []CashAdvance) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindCashAdvance, recs)
}

func (r *repository) LoadShorts(ctx context.Context, employeeID string, year, month int) ([]Short, error) {
	return loadPartition[Short](ctx, r.store, employeeID, year, month, store.KindShort)
}

func (r *repository) SaveShorts(ctx context.Context, employeeID string, year, month int, recs []Short) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindShort, recs)
}

func (r *repository) LoadLoans(ctx context.Context, employeeID string, year, month int) ([]Loan, error) {
	return loadPartition[Loan](ctx, r.store, employeeID, year, month, store.KindLoan)
}

func (r *repository) SaveLoans(ctx context.Context, employeeID string, year, month int, recs []Loan) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindLoan, recs)
}

package payroll

import (
	"context"
	"encoding/json"
	"errors"

	"go-sweldo/internal/store"
)

// Summaries are partitioned by the period's END month: a cross-month
// period always lives in the end date's file, so lookups must search the
// end-month partition.
//
//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	LoadSummaries(ctx context.Context, employeeID string, year, month int) ([]PayrollSummary, error)
	SaveSummaries(ctx context.Context, employeeID string, year, month int, summaries []PayrollSummary) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) LoadSummaries(ctx context.Context, employeeID string, year, month int) ([]PayrollSummary, error) {
	data, err := r.store.Load(ctx, employeeID, year, month, store.KindPayroll)
	if err != nil {
		if errors.Is(err, store.ErrPartitionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var summaries []PayrollSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) SaveSummaries(ctx context.Context, employeeID string, year, month int, summaries []PayrollSummary) error {
	return r.store.Save(ctx, employeeID, year, month, store.KindPayroll, summaries)
}

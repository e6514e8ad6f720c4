package employee

import (
	"context"
	"encoding/json"
	"errors"

	"go-sweldo/internal/store"
)

const employeesDoc = "employees"

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	// FindByID returns (nil, nil) when the employee does not exist; callers
	// decide whether that is fatal.
	FindByID(ctx context.Context, id string) (*Employee, error)
	Save(ctx context.Context, emp Employee) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	data, err := r.store.LoadGlobal(ctx, employeesDoc)
	if err != nil {
		if errors.Is(err, store.ErrPartitionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var emps []Employee
	if err := json.Unmarshal(data, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	emps, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range emps {
		if emps[i].ID == id {
			return &emps[i], nil
		}
	}
	return nil, nil
}

func (r *repository) Save(ctx context.Context, emp Employee) error {
	emps, err := r.FindAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range emps {
		if emps[i].ID == emp.ID {
			emps[i] = emp
			replaced = true
			break
		}
	}
	if !replaced {
		emps = append(emps, emp)
	}

	return r.store.SaveGlobal(ctx, employeesDoc, emps)
}

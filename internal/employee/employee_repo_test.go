package employee_test

import (
	"context"
	"testing"

	"go-sweldo/internal/employee"
	"go-sweldo/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		repo := employee.NewRepository(store.NewFileStore(t.TempDir()))

		emps, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Nil(t, emps)

		emp, err := repo.FindByID(ctx, "EMP-1")
		assert.NoError(t, err)
		assert.Nil(t, emp)
	})

	t.Run("save and find", func(t *testing.T) {
		repo := employee.NewRepository(store.NewFileStore(t.TempDir()))

		assert.NoError(t, repo.Save(ctx, employee.Employee{
			ID: "EMP-1", Name: "Juan Dela Cruz", DailyRate: 500,
			SSS: 525, PhilHealth: 250, PagIbig: 100,
		}))
		assert.NoError(t, repo.Save(ctx, employee.Employee{
			ID: "EMP-2", Name: "Maria Clara", DailyRate: 650,
		}))

		emps, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, emps, 2)

		emp, err := repo.FindByID(ctx, "EMP-2")
		assert.NoError(t, err)
		assert.NotNil(t, emp)
		assert.Equal(t, "Maria Clara", emp.Name)
	})

	t.Run("save replaces by id", func(t *testing.T) {
		repo := employee.NewRepository(store.NewFileStore(t.TempDir()))

		assert.NoError(t, repo.Save(ctx, employee.Employee{ID: "EMP-1", Name: "Juan", DailyRate: 500}))
		assert.NoError(t, repo.Save(ctx, employee.Employee{ID: "EMP-1", Name: "Juan", DailyRate: 550}))

		emps, err := repo.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, emps, 1)
		assert.Equal(t, 550.0, emps[0].DailyRate)
	})
}

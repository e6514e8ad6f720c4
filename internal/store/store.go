package store

import (
	"context"
	"errors"
)

// Kind selects which record family a partition holds. Every kind is
// partitioned per employee per (year, month) except the global documents
// accessed through LoadGlobal/SaveGlobal.
type Kind string

const (
	KindCompensation Kind = "compensation"
	KindBackup       Kind = "backup"
	KindAttendance   Kind = "attendance"
	KindCashAdvance  Kind = "cashadvance"
	KindShort        Kind = "short"
	KindLoan         Kind = "loan"
	KindPayroll      Kind = "payroll"
)

// ErrPartitionNotFound is returned by Load when no document exists for the
// requested partition. Callers treat it as an empty partition.
var ErrPartitionNotFound = errors.New("partition not found")

// RecordStore is the persistence contract the engine consumes. Two
// backends satisfy it: a local JSON file per employee-month partition, and
// a remote document store keyed by {kind}_{employeeId}_{year}_{month}.
// Backends are alternatives selected by environment, never replicas.
//
// Reads and writes operate on whole partition documents. Read-modify-write
// is not atomic across processes; callers serialize mutations per
// partition.
//
//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type RecordStore interface {
	Load(ctx context.Context, employeeID string, year, month int, kind Kind) ([]byte, error)
	Save(ctx context.Context, employeeID string, year, month int, kind Kind, doc any) error
	Delete(ctx context.Context, employeeID string, year, month int, kind Kind) error
	Exists(ctx context.Context, employeeID string, year, month int, kind Kind) (bool, error)

	// Global documents live outside the month partitioning (employees list,
	// holiday calendar).
	LoadGlobal(ctx context.Context, name string) ([]byte, error)
	SaveGlobal(ctx context.Context, name string, doc any) error
}

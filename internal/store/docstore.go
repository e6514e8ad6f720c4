package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DocStore persists each partition as one document in a remote key-value
// document store, keyed {kind}_{employeeId}_{year}_{month}. It mirrors the
// FileStore layout one-to-one so the two backends stay interchangeable.
type DocStore struct {
	rdb *redis.Client
}

func NewDocStore(rdb *redis.Client) *DocStore {
	return &DocStore{rdb: rdb}
}

func docKey(employeeID string, year, month int, kind Kind) string {
	return fmt.Sprintf("%s_%s_%d_%d", kind, employeeID, year, month)
}

func (s *DocStore) Load(ctx context.Context, employeeID string, year, month int, kind Kind) ([]byte, error) {
	data, err := s.rdb.Get(ctx, docKey(employeeID, year, month, kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPartitionNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *DocStore) Save(ctx context.Context, employeeID string, year, month int, kind Kind, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, docKey(employeeID, year, month, kind), data, 0).Err()
}

func (s *DocStore) Delete(ctx context.Context, employeeID string, year, month int, kind Kind) error {
	return s.rdb.Del(ctx, docKey(employeeID, year, month, kind)).Err()
}

func (s *DocStore) Exists(ctx context.Context, employeeID string, year, month int, kind Kind) (bool, error) {
	n, err := s.rdb.Exists(ctx, docKey(employeeID, year, month, kind)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *DocStore) LoadGlobal(ctx context.Context, name string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPartitionNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *DocStore) SaveGlobal(ctx context.Context, name string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, name, data, 0).Err()
}

package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// DB is a mock of the db.DB interface for controller tests.
type DB struct {
	mock.Mock
}

func (db *DB) GetSetting(ctx context.Context, key string) (string, error) {
	args := db.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (db *DB) SaveSetting(ctx context.Context, key, value string) error {
	args := db.Called(ctx, key, value)
	return args.Error(0)
}

func (db *DB) DeleteSetting(ctx context.Context, key string) error {
	args := db.Called(ctx, key)
	return args.Error(0)
}

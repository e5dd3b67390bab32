package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSettingNotFound error = errors.New("setting not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetSetting(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM settings WHERE key=@key`

	args := pgx.NamedArgs{
		"key": key,
	}

	var value string
	err := db.pool.QueryRow(ctx, query, args).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		return "", fmt.Errorf("error reading setting %s: %w", key, err)
	}
	return value, nil
}

func (db *postgresDB) SaveSetting(ctx context.Context, key, value string) error {
	const query = `INSERT INTO settings (key, value, updated)
		VALUES (@key, @value, @updated)
		ON CONFLICT (key) DO UPDATE SET value=@value, updated=@updated`

	args := pgx.NamedArgs{
		"key":   key,
		"value": value,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}

	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving setting %s: %w", key, err)
	}
	return nil
}

func (db *postgresDB) DeleteSetting(ctx context.Context, key string) error {
	const query = `DELETE FROM settings WHERE key=@key`

	args := pgx.NamedArgs{
		"key": key,
	}

	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error deleting setting %s: %w", key, err)
	}
	return nil
}

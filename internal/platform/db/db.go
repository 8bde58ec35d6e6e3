package db

import (
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/config"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PoolConfig sizes the database/sql pool in front of Postgres.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// PoolConfigFromEnv reads DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// DB_CONN_MAX_LIFETIME and DB_PING_TIMEOUT. Idle connections never exceed
// open ones.
func PoolConfigFromEnv() PoolConfig {
	pc := PoolConfig{
		MaxOpenConns:    config.GetInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    config.GetInt("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: config.GetDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		PingTimeout:     config.GetDuration("DB_PING_TIMEOUT", 5*time.Second),
	}
	if pc.MaxOpenConns > 0 && pc.MaxIdleConns > pc.MaxOpenConns {
		pc.MaxIdleConns = pc.MaxOpenConns
	}
	return pc
}

// Open connects to Postgres through the pgx database/sql driver and pings it
// within pool.PingTimeout.
func Open(ctx context.Context, databaseURL string, pool PoolConfig) (*sql.DB, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, errors.New("open postgres: database url is empty")
	}

	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	conn.SetMaxOpenConns(pool.MaxOpenConns)
	conn.SetMaxIdleConns(pool.MaxIdleConns)
	conn.SetConnMaxLifetime(pool.ConnMaxLifetime)

	pingCtx := ctx
	if pool.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, pool.PingTimeout)
		defer cancel()
	}

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open postgres: ping: %w", err)
	}

	return conn, nil
}

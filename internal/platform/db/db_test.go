package db

import (
	"context"
	"testing"
	"time"
)

func clearPoolEnv(t *testing.T) {
	for _, k := range []string{"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_PING_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestPoolConfigFromEnvDefaults(t *testing.T) {
	clearPoolEnv(t)

	got := PoolConfigFromEnv()
	want := PoolConfig{MaxOpenConns: 10, MaxIdleConns: 10, ConnMaxLifetime: 30 * time.Minute, PingTimeout: 5 * time.Second}
	if got != want {
		t.Fatalf("PoolConfigFromEnv() = %+v, want %+v", got, want)
	}
}

func TestPoolConfigFromEnvClampsIdle(t *testing.T) {
	clearPoolEnv(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_MAX_IDLE_CONNS", "8")
	t.Setenv("DB_PING_TIMEOUT", "250ms")

	got := PoolConfigFromEnv()
	if got.MaxOpenConns != 4 || got.MaxIdleConns != 4 {
		t.Fatalf("open/idle = %d/%d, want 4/4", got.MaxOpenConns, got.MaxIdleConns)
	}
	if got.PingTimeout != 250*time.Millisecond {
		t.Fatalf("PingTimeout = %v, want 250ms", got.PingTimeout)
	}
}

func TestOpenRejectsEmptyURL(t *testing.T) {
	if _, err := Open(context.Background(), "  ", PoolConfig{}); err == nil {
		t.Fatal("Open(empty) err = nil, want error")
	}
}

func TestOpenFailsWhenUnreachable(t *testing.T) {
	pool := PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1, PingTimeout: 2 * time.Second}

	conn, err := Open(context.Background(), "postgres://u:p@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", pool)
	if err == nil {
		conn.Close()
		t.Fatal("Open(unreachable) err = nil, want error")
	}
}

package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
)

// Pool is the subset of pgxpool behaviour the snapshot store relies on.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool builds a pgx connection pool for the snapshot store and verifies
// the database is reachable before handing it out. maxConns is kept within
// [DefaultMinConnections, math.MaxInt32] so the pool config never rejects it.
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns < DefaultMinConnections {
		maxConns = DefaultMinConnections
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnIdleTime = maxIdle
	config.MaxConnLifetime = maxLife

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgDatabaseConnected, "max_conns", maxConns)
	return pool, nil
}

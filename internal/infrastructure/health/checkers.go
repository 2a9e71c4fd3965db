package health

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/govargas/bada/internal/core/ports"
	infraDB "github.com/govargas/bada/internal/infrastructure/db"
)

// postgresChecker probes the user and favorites store.
type postgresChecker struct{ db *infraDB.Database }

func (p *postgresChecker) Name() string                    { return "database" }
func (p *postgresChecker) Check(ctx context.Context) error { return p.db.DB.PingContext(ctx) }

func NewDBHealthChecker(db *infraDB.Database) ports.HealthChecker {
	return &postgresChecker{db: db}
}

// redisChecker probes the shared cache backend. It is only registered when
// the Redis backend is selected; the in-process cache has nothing to probe.
type redisChecker struct{ client *redis.Client }

func (r *redisChecker) Name() string                    { return "redis" }
func (r *redisChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisChecker{client: client}
}

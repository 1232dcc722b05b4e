package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// HealthService reports whether the backing stores answer
type HealthService struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthService builds the checker; rdb may be nil when redis is not configured
func NewHealthService(db *gorm.DB, rdb *redis.Client) *HealthService {
	return &HealthService{db: db, redis: rdb}
}

// Check pings every configured dependency. The map holds "ok" or the error
// text per dependency; healthy is false when any ping failed.
func (s *HealthService) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	status := make(map[string]string)
	healthy := true

	if err := s.pingDB(ctx); err != nil {
		status["database"] = err.Error()
		healthy = false
	} else {
		status["database"] = "ok"
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			status["redis"] = err.Error()
			healthy = false
		} else {
			status["redis"] = "ok"
		}
	}

	return status, healthy
}

func (s *HealthService) pingDB(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

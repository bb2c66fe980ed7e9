package stats

import (
	"context"
	"sync"

	"vershash/internal/structs"
	"vershash/pkg/logger"
	"vershash/pkg/redis"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const (
	usersKey    = "stats.users"
	messagesKey = "stats.messages"
	ordersKey   = "stats.orders"
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Redis  redis.Client `optional:"true"`
	}

	// Service counts bot traffic. Redis-backed when a client is configured,
	// process-memory otherwise. Bumps are best effort and never fail a
	// served update.
	Service interface {
		BumpMessage(ctx context.Context, userID int64)
		BumpOrder(ctx context.Context)
		Snapshot(ctx context.Context) structs.BotStats
	}

	service struct {
		logger logger.Logger
		redis  redis.Client

		m        sync.Mutex
		users    map[int64]struct{}
		messages int64
		orders   int64
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		redis:  p.Redis,
		users:  map[int64]struct{}{},
	}
}

func (s *service) BumpMessage(ctx context.Context, userID int64) {
	if s.redis == nil {
		s.m.Lock()
		s.users[userID] = struct{}{}
		s.messages++
		s.m.Unlock()
		return
	}

	if err := s.redis.SAdd(ctx, usersKey, cast.ToString(userID)); err != nil {
		s.logger.Warn(ctx, "stats sadd failed", zap.Error(err))
	}
	if _, err := s.redis.Incr(ctx, messagesKey); err != nil {
		s.logger.Warn(ctx, "stats incr failed", zap.Error(err))
	}
}

func (s *service) BumpOrder(ctx context.Context) {
	if s.redis == nil {
		s.m.Lock()
		s.orders++
		s.m.Unlock()
		return
	}

	if _, err := s.redis.Incr(ctx, ordersKey); err != nil {
		s.logger.Warn(ctx, "stats incr failed", zap.Error(err))
	}
}

func (s *service) Snapshot(ctx context.Context) structs.BotStats {
	if s.redis == nil {
		s.m.Lock()
		defer s.m.Unlock()
		return structs.BotStats{
			Users:    int64(len(s.users)),
			Messages: s.messages,
			Orders:   s.orders,
		}
	}

	users, err := s.redis.SCard(ctx, usersKey)
	if err != nil {
		s.logger.Warn(ctx, "stats scard failed", zap.Error(err))
	}

	return structs.BotStats{
		Users:    users,
		Messages: s.counter(ctx, messagesKey),
		Orders:   s.counter(ctx, ordersKey),
	}
}

func (s *service) counter(ctx context.Context, key string) int64 {
	val, err := s.redis.Find(ctx, key)
	if err != nil {
		return 0
	}
	return cast.ToInt64(val)
}

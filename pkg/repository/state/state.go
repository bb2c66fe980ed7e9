package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/fx"

	"vershash/pkg/logger"
	"vershash/pkg/redis"
	"vershash/pkg/tgrouter/interfaces"
)

var Module = fx.Provide(New)

// stateTTL bounds how long an abandoned conversation is remembered.
const stateTTL = 24 * time.Hour

type Params struct {
	fx.In
	Logger logger.Logger
	Redis  redis.Client `optional:"true"`
}

type stateDoc struct {
	State string            `json:"state"`
	Data  map[string]string `json:"data"`
}

type state struct {
	logger logger.Logger
	redis  redis.Client

	m   sync.Mutex
	mem map[string]stateDoc
}

// New keeps conversation state in redis when one is configured; otherwise a
// process-memory map serves a single-process deployment.
func New(params Params) interfaces.State {
	return &state{
		logger: params.Logger,
		redis:  params.Redis,
		mem:    map[string]stateDoc{},
	}
}

func stateKey(userId, chatId int) string {
	return fmt.Sprintf("state.%d.%d", userId, chatId)
}

func (s *state) Get(ctx context.Context, userId, chatId int) (string, map[string]string, error) {
	if s.redis == nil {
		s.m.Lock()
		defer s.m.Unlock()
		doc, ok := s.mem[stateKey(userId, chatId)]
		if !ok {
			return "", nil, interfaces.ErrNotFound
		}
		return doc.State, doc.Data, nil
	}

	var doc stateDoc
	if err := s.redis.FindObj(ctx, stateKey(userId, chatId), &doc); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return "", nil, interfaces.ErrNotFound
		}
		return "", nil, fmt.Errorf("repo: failed get state: %w", err)
	}
	return doc.State, doc.Data, nil
}

func (s *state) Set(ctx context.Context, userId, chatId int, st string, data map[string]string) error {
	doc := stateDoc{State: st, Data: data}

	if s.redis == nil {
		s.m.Lock()
		defer s.m.Unlock()
		s.mem[stateKey(userId, chatId)] = doc
		return nil
	}

	if err := s.redis.SaveObj(ctx, stateKey(userId, chatId), doc, stateTTL); err != nil {
		return fmt.Errorf("repo: failed update state: %w", err)
	}
	return nil
}

func (s *state) Delete(ctx context.Context, userId, chatId int) error {
	if s.redis == nil {
		s.m.Lock()
		defer s.m.Unlock()
		delete(s.mem, stateKey(userId, chatId))
		return nil
	}

	if err := s.redis.Delete(ctx, stateKey(userId, chatId)); err != nil {
		return fmt.Errorf("repo: failed delete state: %w", err)
	}
	return nil
}

func (s *state) GetData(ctx context.Context, userId, chatId int, key string) (string, error) {
	_, data, err := s.Get(ctx, userId, chatId)
	if err != nil {
		return "", err
	}
	return data[key], nil
}

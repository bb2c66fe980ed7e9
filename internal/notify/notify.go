package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vershash/pkg/config"
	"vershash/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
	}

	// Service pings the configured sync endpoint after catalog writes so a
	// mirror frontend can refetch. Best effort: failures are logged, never
	// surfaced to the caller.
	Service interface {
		CatalogChanged(ctx context.Context, event string)
	}

	service struct {
		url    string
		logger logger.Logger
		client *http.Client
	}
)

func New(p Params) Service {
	return &service{
		url:    p.Config.GetString("sync.url"),
		logger: p.Logger,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *service) CatalogChanged(ctx context.Context, event string) {
	if s.url == "" {
		return
	}

	body, _ := json.Marshal(map[string]string{"event": event})

	go func() {
		resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(body))
		if err != nil {
			s.logger.Warn(ctx, "sync notify failed", zap.String("event", event), zap.Error(err))
			return
		}
		resp.Body.Close()
	}()
}

package botconfig

import (
	"context"
	"errors"
	"sync"

	"vershash/internal/structs"
	"vershash/pkg/db"
	"vershash/pkg/logger"
	botconfigRepo "vershash/pkg/repository/postgres/botconfig_repo"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		BotConfigRepo botconfigRepo.Repo
		DB            db.Querier
		Logger        logger.Logger
	}

	Service interface {
		Get(ctx context.Context) (structs.BotConfig, error)
		Patch(ctx context.Context, req structs.PatchBotConfig) (structs.BotConfig, error)
	}

	service struct {
		botConfigRepo botconfigRepo.Repo
		logger        logger.Logger

		// When no store is configured the config lives here and is lost on
		// restart.
		memOnly bool
		m       sync.Mutex
		mem     *structs.BotConfig
	}
)

func New(p Params) Service {
	return &service{
		botConfigRepo: p.BotConfigRepo,
		logger:        p.Logger,
		memOnly:       !p.DB.Available(),
	}
}

func Defaults() structs.BotConfig {
	return structs.BotConfig{
		Welcome:       "Bienvenue {firstname} 👋\nParcourez le menu pour commander.",
		MiniApp:       structs.MiniApp{Text: "🛍 Boutique"},
		Socials:       []structs.SocialLink{},
		ButtonsPerRow: 2,
	}
}

func clampButtons(n int) int {
	if n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}

func (s *service) Get(ctx context.Context) (structs.BotConfig, error) {
	if s.memOnly {
		s.m.Lock()
		defer s.m.Unlock()
		if s.mem == nil {
			cfg := Defaults()
			s.mem = &cfg
		}
		return *s.mem, nil
	}

	resp, err := s.botConfigRepo.Get(ctx)
	if err == nil {
		return resp, nil
	}

	if !errors.Is(err, structs.ErrNotFound) {
		s.logger.Error(ctx, "->botConfigRepo.Get", zap.Error(err))
		return structs.BotConfig{}, err
	}

	defaults := Defaults()
	if err := s.botConfigRepo.Save(ctx, defaults); err != nil {
		s.logger.Error(ctx, "->botConfigRepo.Save defaults", zap.Error(err))
		return structs.BotConfig{}, err
	}
	return defaults, nil
}

func (s *service) Patch(ctx context.Context, req structs.PatchBotConfig) (structs.BotConfig, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return structs.BotConfig{}, err
	}

	merge(&current, req)
	current.ButtonsPerRow = clampButtons(current.ButtonsPerRow)

	if s.memOnly {
		s.m.Lock()
		s.mem = &current
		s.m.Unlock()
		return current, nil
	}

	if err := s.botConfigRepo.Save(ctx, current); err != nil {
		s.logger.Error(ctx, "->botConfigRepo.Save", zap.Error(err))
		return structs.BotConfig{}, err
	}
	return current, nil
}

func merge(dst *structs.BotConfig, req structs.PatchBotConfig) {
	if req.Welcome != nil {
		dst.Welcome = *req.Welcome
	}
	if req.WelcomeImage != nil {
		dst.WelcomeImage = *req.WelcomeImage
	}
	if req.InfoText != nil {
		dst.InfoText = *req.InfoText
	}
	if req.MiniApp != nil {
		dst.MiniApp = *req.MiniApp
	}
	if req.Socials != nil {
		dst.Socials = *req.Socials
	}
	if req.ButtonsPerRow != nil {
		dst.ButtonsPerRow = *req.ButtonsPerRow
	}
}

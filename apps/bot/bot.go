package bot

import (
	"context"
	"fmt"

	"vershash/apps/bot/commands/shop"
	"vershash/apps/bot/middleware"
	"vershash/pkg/config"
	"vershash/pkg/logger"
	"vershash/pkg/tgrouter"
	"vershash/pkg/tgrouter/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

var Module = fx.Options(
	shop.Module,

	fx.Provide(middleware.New),

	fx.Invoke(NewBot),
)

type Params struct {
	fx.In
	fx.Lifecycle

	Logger     logger.Logger
	Config     config.IConfig
	Factory    tgrouter.RouterFactory
	State      interfaces.State
	Middleware middleware.Middleware

	ShopCmd shop.Commands
}

// NewBot starts the storefront chatbot. Without a token the gateway runs
// alone and the bot is skipped.
func NewBot(p Params) error {
	ctx := context.Background()

	token := p.Config.GetString("bot_token_vershash")
	if token == "" {
		p.Logger.Info(ctx, "bot token not set, telegram bot disabled")
		return nil
	}

	tb, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}

	botCtx, cancel := context.WithCancel(ctx)
	registerClientCommands(tb)

	r := p.Factory(tb, tgrouter.WithPoolSize(10), tgrouter.WithState(p.State))

	bot := r.Group()
	bot.Use(p.Middleware.StatsMw)

	tgrouter.On(bot, tgrouter.Cmd("start"), p.ShopCmd.Start)

	tgrouter.On(bot, tgrouter.Callback("start"), p.ShopCmd.StartCallback)
	tgrouter.On(bot, tgrouter.Callback("categories"), p.ShopCmd.Categories)
	tgrouter.On(bot, tgrouter.Callback("category"), p.ShopCmd.Category)
	tgrouter.On(bot, tgrouter.Callback("product"), p.ShopCmd.Product)
	tgrouter.On(bot, tgrouter.Callback("add"), p.ShopCmd.AddToCart)
	tgrouter.On(bot, tgrouter.Callback("cart"), p.ShopCmd.Cart)
	tgrouter.On(bot, tgrouter.Callback("plus"), p.ShopCmd.Plus)
	tgrouter.On(bot, tgrouter.Callback("minus"), p.ShopCmd.Minus)
	tgrouter.On(bot, tgrouter.Callback("remove"), p.ShopCmd.Remove)
	tgrouter.On(bot, tgrouter.Callback("clear"), p.ShopCmd.Clear)
	tgrouter.On(bot, tgrouter.Callback("checkout"), p.ShopCmd.Checkout)
	tgrouter.On(bot, tgrouter.Callback("noop"), p.ShopCmd.Noop)

	go r.ListenUpdate(botCtx)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info(ctx, "bot started!")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			r.Shutdown(ctx, cancel)
			p.Logger.Info(ctx, "bot stopped!")
			return nil
		},
	})

	return nil
}

func registerClientCommands(tb *tgbotapi.BotAPI) {
	cfg := tgbotapi.NewSetMyCommands([]tgbotapi.BotCommand{
		{Command: "start", Description: "Redémarrer le bot"},
	}...)

	_, _ = tb.Request(cfg)
}

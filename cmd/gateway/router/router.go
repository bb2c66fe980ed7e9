package router

import (
	"context"
	"net/http"

	"vershash/apps/gateway/handlers/auth"
	"vershash/apps/gateway/handlers/category"
	"vershash/apps/gateway/handlers/file"
	"vershash/apps/gateway/handlers/middleware"
	"vershash/apps/gateway/handlers/product"
	"vershash/apps/gateway/handlers/settings"
	"vershash/apps/gateway/handlers/telegram"
	"vershash/pkg/config"
	"vershash/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger

	Auth     auth.Handler
	Product  product.Handler
	Category category.Handler
	Settings settings.Handler
	Telegram telegram.Handler
	File     file.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	r.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	authRequired := params.CheckAuth()

	{
		r.POST("/auth/login", params.Auth.Login)
	}

	productGroup := r.Group("/products")
	{
		productGroup.GET("", params.Product.GetListProduct)
		productGroup.GET("/:id", params.Product.GetByIDProduct)
		productGroup.POST("", authRequired, params.Product.CreateProduct)
		productGroup.PUT("/:id", authRequired, params.Product.UpdateProduct)
		productGroup.DELETE("/:id", authRequired, params.Product.DeleteProduct)
	}

	categoryGroup := r.Group("/categories")
	{
		categoryGroup.GET("", params.Category.GetListCategory)
		categoryGroup.POST("", authRequired, params.Category.CreateCategory)
		categoryGroup.PUT("/:id", authRequired, params.Category.UpdateCategory)
		categoryGroup.DELETE("/:id", authRequired, params.Category.DeleteCategory)
	}

	settingsGroup := r.Group("/settings")
	{
		settingsGroup.GET("", params.Settings.GetSettings)
		settingsGroup.GET("/qr", params.Settings.GetSettingsQR)
		settingsGroup.PUT("", authRequired, params.Settings.PutSettings)
	}

	telegramGroup := r.Group("/telegram", authRequired)
	{
		telegramGroup.GET("/config", params.Telegram.GetBotConfig)
		telegramGroup.POST("/config", params.Telegram.PostBotConfig)
		telegramGroup.GET("/stats", params.Telegram.GetStats)
	}

	{
		r.POST("/files", authRequired, params.File.CreateFile)
	}

	allowedOrigins := params.Config.GetStringSlice("server.allowed_origins")
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}

package handlers

import (
	"vershash/apps/gateway/handlers/auth"
	"vershash/apps/gateway/handlers/category"
	"vershash/apps/gateway/handlers/file"
	"vershash/apps/gateway/handlers/middleware"
	"vershash/apps/gateway/handlers/product"
	"vershash/apps/gateway/handlers/settings"
	"vershash/apps/gateway/handlers/telegram"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	auth.Module,
	product.Module,
	category.Module,
	settings.Module,
	telegram.Module,
	file.Module,
)

package internal

import (
	"vershash/internal/auth"
	"vershash/internal/botconfig"
	"vershash/internal/cart"
	"vershash/internal/category"
	"vershash/internal/notify"
	"vershash/internal/product"
	"vershash/internal/settings"
	"vershash/internal/stats"

	"go.uber.org/fx"
)

var Module = fx.Options(
	auth.Module,
	notify.Module,
	product.Module,
	category.Module,
	settings.Module,
	botconfig.Module,
	cart.Module,
	stats.Module,
)

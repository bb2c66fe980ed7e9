package postgres

import (
	botconfigrepo "vershash/pkg/repository/postgres/botconfig_repo"
	categoryrepo "vershash/pkg/repository/postgres/category_repo"
	productrepo "vershash/pkg/repository/postgres/product_repo"
	settingsrepo "vershash/pkg/repository/postgres/settings_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	productrepo.Module,
	categoryrepo.Module,
	settingsrepo.Module,
	botconfigrepo.Module,
)

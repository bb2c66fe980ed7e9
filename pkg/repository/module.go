package repository

import (
	"go.uber.org/fx"

	"vershash/pkg/repository/postgres"
	"vershash/pkg/repository/state"
)

var Module = fx.Options(
	postgres.Module,
	state.Module,
)

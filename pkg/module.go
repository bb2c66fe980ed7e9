package pkg

import (
	"go.uber.org/fx"

	"vershash/pkg/cache"
	"vershash/pkg/config"
	"vershash/pkg/db"
	"vershash/pkg/filemanager"
	"vershash/pkg/logger"
	"vershash/pkg/migration"
	"vershash/pkg/redis"
	"vershash/pkg/reply"
	"vershash/pkg/repository"
	"vershash/pkg/tgrouter"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	migration.Module,
	repository.Module,
	db.Module,
	cache.Module,
	reply.Module,
	filemanager.Module,
	tgrouter.Module,
	redis.Module,
)

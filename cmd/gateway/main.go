package main

import (
	"vershash/apps/bot"
	"vershash/apps/gateway"
	"vershash/cmd/gateway/router"
	"vershash/internal"
	"vershash/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
		bot.Module,
	).Run()
}

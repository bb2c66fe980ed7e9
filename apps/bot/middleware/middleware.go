package middleware

import (
	"vershash/internal/stats"
	"vershash/pkg/logger"
	"vershash/pkg/tgrouter"

	"go.uber.org/fx"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger   logger.Logger
	StatsSvc stats.Service
}

type Middleware interface {
	StatsMw(next tgrouter.Handler) tgrouter.Handler
}

type mw struct {
	logger   logger.Logger
	statsSvc stats.Service
}

func New(p Params) Middleware {
	return &mw{
		logger:   p.Logger,
		statsSvc: p.StatsSvc,
	}
}

// StatsMw counts every served update and the user behind it before the
// handler runs. Counting never blocks or fails the update.
func (m *mw) StatsMw(next tgrouter.Handler) tgrouter.Handler {
	return func(c *tgrouter.Ctx) {
		if from := c.Update().SentFrom(); from != nil {
			m.statsSvc.BumpMessage(c.Context, from.ID)
		}
		next(c)
	}
}

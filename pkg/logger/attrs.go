package logger

import (
	"context"

	"go.uber.org/zap"
)

const logIDKey = "logID"

func getAttrs(ctx context.Context) []zap.Field {
	lgCtx, _ := ctx.Value(&logCtx).(*logContext)
	if lgCtx == nil {
		return nil
	}

	return lgCtx.ToFields()
}

package logger

import (
	"bytes"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

type (
	logCtxKey struct{}
)

var logCtx logCtxKey

type LogID [8]byte

func (lid LogID) String() string {
	return hex.EncodeToString(lid[:])
}

var nilLogID = LogID{}

func (lid LogID) IsValid() bool {
	return !bytes.Equal(lid[:], nilLogID[:])
}

type logContext struct {
	StartTime time.Time
	LogID     LogID
}

func (lgCtx *logContext) ToFields() []zap.Field {
	if lgCtx == nil {
		return nil
	}
	return []zap.Field{zap.String(logIDKey, lgCtx.LogID.String())}
}

func newLogContext(logID LogID) *logContext {
	return &logContext{
		LogID:     logID,
		StartTime: time.Now(),
	}
}

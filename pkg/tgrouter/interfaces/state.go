package interfaces

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("state not found")

type State interface {
	Set(ctx context.Context, userId int, chatId int, state string, data map[string]string) error
	Get(ctx context.Context, userId int, chatId int) (string, map[string]string, error)
	Delete(ctx context.Context, userId int, chatId int) error
	GetData(ctx context.Context, userId, chatId int, key string) (string, error)
}

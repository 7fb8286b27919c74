package redis

import (
	"context"
	"healthlink-service/internal/app/models"
	"time"
)

type RedisRepository interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	PushToList(ctx context.Context, key string, exp time.Duration, values ...interface{}) error
	GetListMembers(ctx context.Context, key string) ([]string, error)
	ReplaceList(ctx context.Context, key string, exp time.Duration, values ...interface{}) error
}

package redis

import (
	"context"
	"fmt"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	return r.Set(ctx, fmt.Sprintf(constvars.SessionRedisKeyFormat, session.SessionID), session, exp)
}

func (r *redisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.Get(ctx, fmt.Sprintf(constvars.SessionRedisKeyFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, fmt.Sprintf(constvars.SessionRedisKeyFormat, sessionID))
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}

	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) PushToList(ctx context.Context, key string, exp time.Duration, values ...interface{}) error {
	err := r.client.RPush(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	if exp > 0 {
		if err := r.client.Expire(ctx, key, exp).Err(); err != nil {
			return exceptions.ErrRedisSet(err)
		}
	}
	return nil
}

func (r *redisRepository) GetListMembers(ctx context.Context, key string) ([]string, error) {
	members, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return members, nil
}

// ReplaceList rewrites the whole list atomically enough for our use: the
// list is owned by a single user session, so delete-then-push is acceptable.
func (r *redisRepository) ReplaceList(ctx context.Context, key string, exp time.Duration, values ...interface{}) error {
	if err := r.Delete(ctx, key); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	return r.PushToList(ctx, key, exp, values...)
}

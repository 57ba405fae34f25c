package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const draftKeyPrefix = "booking_draft:"

// RedisStore хранилище черновиков в Redis с TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient создает новый клиент Redis на основе конфигурации
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// NewRedisStore создает хранилище черновиков в Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Save сохраняет черновик (обновляет TTL)
func (s *RedisStore) Save(ctx context.Context, draft *domain.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: marshal draft: %v", ErrStorage, err)
	}

	if err := s.client.Set(ctx, draftKey(draft.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set draft: %v", ErrStorage, err)
	}

	return nil
}

// Get возвращает черновик по id
func (s *RedisStore) Get(ctx context.Context, draftID string) (*domain.BookingDraft, error) {
	val, err := s.client.Get(ctx, draftKey(draftID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get draft: %v", ErrStorage, err)
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return nil, fmt.Errorf("%w: unmarshal draft: %v", ErrStorage, err)
	}

	return &draft, nil
}

// Delete удаляет черновик. Удаление отсутствующего черновика не ошибка.
func (s *RedisStore) Delete(ctx context.Context, draftID string) error {
	if err := s.client.Del(ctx, draftKey(draftID)).Err(); err != nil {
		return fmt.Errorf("%w: delete draft: %v", ErrStorage, err)
	}
	return nil
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("%w: ping redis: %v", ErrStorage, err)
	}
	return nil
}

func draftKey(draftID string) string {
	return draftKeyPrefix + draftID
}

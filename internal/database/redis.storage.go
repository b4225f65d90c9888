package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Devansu-Yadav/TechTv-BackEnd/config"
)

// RedisStorage triển khai fiber.Storage trên Redis để rate limiter chia sẻ bộ đếm giữa nhiều instance.
// Mọi key đều có prefix để Reset chỉ xoá dữ liệu của limiter.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage tạo storage từ cấu hình, trả về nil nếu REDIS_ADDR trống
func NewRedisStorage(c *config.Configuration, prefix string) (*RedisStorage, error) {
	if c == nil || c.Redis_Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         c.Redis_Addr,
		Password:     c.Redis_Password,
		DB:           c.Redis_DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis at %s: %w", c.Redis_Addr, err)
	}

	return &RedisStorage{client: client, prefix: prefix}, nil
}

func (s *RedisStorage) key(k string) string {
	return s.prefix + k
}

// GetWithContext trả về nil, nil nếu key không tồn tại
func (s *RedisStorage) GetWithContext(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	return s.GetWithContext(context.Background(), key)
}

// SetWithContext lưu giá trị, exp = 0 nghĩa là không hết hạn
func (s *RedisStorage) SetWithContext(ctx context.Context, key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.SetWithContext(context.Background(), key, val, exp)
}

func (s *RedisStorage) DeleteWithContext(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *RedisStorage) Delete(key string) error {
	return s.DeleteWithContext(context.Background(), key)
}

// ResetWithContext xoá mọi key có prefix của storage
func (s *RedisStorage) ResetWithContext(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *RedisStorage) Reset() error {
	return s.ResetWithContext(context.Background())
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

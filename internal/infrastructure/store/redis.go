package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var _ BlobStore = (*RedisStore)(nil)

// RedisStore blob store sobre Redis: una clave por colección.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore conecta con Redis y verifica la conexión.
func NewRedisStore(ctx context.Context, addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping Redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient construye el store con un cliente ya creado (tests).
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load devuelve el blob del kind o (nil, nil) si la clave no existe.
func (s *RedisStore) Load(ctx context.Context, kind string) ([]byte, error) {
	data, err := s.client.Get(ctx, kind).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección %s: %w", kind, err)
	}
	return data, nil
}

// Save reemplaza el blob completo del kind, sin expiración.
func (s *RedisStore) Save(ctx context.Context, kind string, data []byte) error {
	if err := s.client.Set(ctx, kind, data, 0).Err(); err != nil {
		return fmt.Errorf("escribir colección %s: %w", kind, err)
	}
	return nil
}

// Delete elimina la clave del kind.
func (s *RedisStore) Delete(ctx context.Context, kind string) error {
	if err := s.client.Del(ctx, kind).Err(); err != nil {
		return fmt.Errorf("eliminar colección %s: %w", kind, err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

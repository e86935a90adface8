package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*Storage)(nil)

// Storage adaptador fiber.Storage para compartir los contadores del limiter entre instancias.
// Close no cierra el cliente: lo comparte el resto de la aplicación.
type Storage struct {
	client  goredis.UniversalClient
	prefix  string
	timeout time.Duration
}

// NewStorage construye el adaptador; las claves quedan bajo prefix (por defecto "lms:limiter:").
func NewStorage(client goredis.UniversalClient, prefix string) *Storage {
	if prefix == "" {
		prefix = DefaultPrefix + "limiter:"
	}
	return &Storage{client: client, prefix: prefix, timeout: 2 * time.Second}
}

func (s *Storage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get devuelve nil, nil si la clave no existe.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage get: %w", err)
	}
	return val, nil
}

// Set guarda val; exp 0 significa sin expiración.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Reset borra sólo las claves con el prefijo del adaptador.
func (s *Storage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("storage reset: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *Storage) Close() error { return nil }

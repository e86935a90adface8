package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/lms-api/pkg/config"
	"github.com/jhoicas/lms-api/pkg/logger"
)

// DefaultPrefix prefijo común de todas las claves de la aplicación.
const DefaultPrefix = "lms:"

// NewClient crea el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	if log != nil {
		log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis listo")
	}
	return client, nil
}

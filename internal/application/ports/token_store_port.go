package ports

import (
	"context"
	"time"
)

// TokenStore guarda el estado de los jti emitidos: lista de revocación de refresh tokens
// y registro de consumo de los tokens de un solo uso (verificación, reset).
// Las entradas expiran con el token, por eso todas las escrituras reciben ttl.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// RevokeIfAbsent revoca el jti de forma atómica; devuelve false si ya estaba revocado.
	RevokeIfAbsent(ctx context.Context, jti string, ttl time.Duration) (bool, error)
	// Consume marca el jti como usado de forma atómica; devuelve false si ya estaba consumido.
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAccountBlocked     = errors.New("la cuenta está bloqueada")
	ErrTokenInvalid       = errors.New("token inválido o expirado")
	ErrTokenConsumed      = errors.New("el token ya fue utilizado")
	ErrEmployeeLimit      = errors.New("la empresa alcanzó el máximo de empleados de su plan")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

package http

import "github.com/gofiber/fiber/v2"

// Locals keys para la identidad autenticada.
const (
	LocalAccountID   = "account_id"
	LocalRole        = "role"
	LocalAccountType = "account_type"
)

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAccountID devuelve el id de la cuenta autenticada (después de AuthMiddleware).
func GetAccountID(c *fiber.Ctx) string { return localString(c, LocalAccountID) }

// GetRole devuelve el rol de la cuenta autenticada.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetAccountType devuelve el tipo de cuenta autenticada.
func GetAccountType(c *fiber.Ctx) string { return localString(c, LocalAccountType) }

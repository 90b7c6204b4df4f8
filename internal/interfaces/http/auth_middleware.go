package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Liquidacion-api/internal/application/dto"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/pkg/jwt"
)

// Locals key para la autoridad resuelta del actor en Fiber.
const LocalAutoridad = "autoridad"

// AuthMiddleware valida el Bearer Token JWT y deja en c.Locals la Autoridad
// del actor (id, rol, sede principal, autoridad central).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAutoridad, entity.Autoridad{
			ActorID:          id.UserID,
			Rol:              id.Rol,
			SedeID:           id.SedeID,
			AutoridadCentral: id.AutoridadCentral,
		})
		return c.Next()
	}
}

// GetAutoridad devuelve la autoridad del contexto (después del middleware de
// auth). El segundo valor es false si no hay autoridad (ruta sin proteger).
func GetAutoridad(c *fiber.Ctx) (entity.Autoridad, bool) {
	v := c.Locals(LocalAutoridad)
	if v == nil {
		return entity.Autoridad{}, false
	}
	a, ok := v.(entity.Autoridad)
	return a, ok
}

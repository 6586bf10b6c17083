package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
	"github.com/jhoicas/mes-pda-api/internal/application/inventory"
	"github.com/jhoicas/mes-pda-api/pkg/jwt"
)

// Locals keys de la identidad resuelta por el token.
const (
	LocalUserID    = "user_id"
	LocalSaupj     = "saupj"
	LocalRole      = "role"
	LocalAnonymous = "anonymous"
)

// AuthConfig comportamiento del middleware.
type AuthConfig struct {
	Secret     string
	Issuer     string // vacío = no se valida el emisor
	Required   bool   // false = se aceptan peticiones sin token (identidad del body)
	SystemUser string // userId por defecto sin token ni userId en el body
}

// AuthMiddleware valida el Bearer Token JWT y deja userId, saupj y rol en c.Locals.
// Sin header y con Required=false la petición sigue como anónima; un token presente
// pero inválido siempre es 401.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if cfg.Required {
				return Unauthorized(c, "MISSING_TOKEN: Authorization header requerido")
			}
			c.Locals(LocalAnonymous, true)
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return Unauthorized(c, "INVALID_TOKEN: formato Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return Unauthorized(c, "MISSING_TOKEN: token vacío")
		}
		id, err := jwt.Parse(cfg.Secret, cfg.Issuer, tokenString)
		if err != nil {
			return Unauthorized(c, "INVALID_TOKEN: token inválido o expirado")
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalSaupj, id.Saupj)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// RequireRole exige uno de los roles. Las peticiones anónimas (AUTH_REQUIRED=false)
// pasan: en ese modo el PDA no tiene sesión de la que sacar un rol.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		if isAnonymous(c) {
			return c.Next()
		}
		role := GetRole(c)
		if role == "" {
			return Unauthorized(c, "MISSING_ROLE: el token no trae rol")
		}
		if !allowed[role] {
			return Error(c, "FORBIDDEN: el rol '"+role+"' no puede realizar esta operación", fiber.StatusForbidden)
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

func isAnonymous(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalAnonymous).(bool)
	return v
}

// GetUserID usuario del token (vacío si anónimo).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetSaupj planta del token (vacío si anónimo).
func GetSaupj(c *fiber.Ctx) string { return localString(c, LocalSaupj) }

// GetRole rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// actorResolver construye el Actor de la petición: el token manda; sin token se usa
// el body y, si falta userId, el usuario de sistema.
type actorResolver struct {
	systemUser string
}

func (r actorResolver) resolve(c *fiber.Ctx, id dto.Identity) inventory.Actor {
	a := inventory.Actor{UserID: GetUserID(c), Saupj: GetSaupj(c), Role: GetRole(c)}
	if a.UserID == "" {
		a.UserID = strings.TrimSpace(id.UserID)
	}
	if a.Saupj == "" {
		a.Saupj = strings.TrimSpace(id.Saupj)
	}
	if a.UserID == "" {
		a.UserID = r.systemUser
	}
	return a
}

// saupj planta para consultas GET: token o query ?saupj=.
func (r actorResolver) saupj(c *fiber.Ctx) string {
	if s := GetSaupj(c); s != "" {
		return s
	}
	return strings.TrimSpace(c.Query("saupj"))
}

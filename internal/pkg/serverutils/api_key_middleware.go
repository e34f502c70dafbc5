package serverutils

import (
	"context"
	"strings"
	"time"

	"workflow-data-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

const principalLocal = "principal"

// PrincipalResolver turns a presented API key into a Principal.
// Implemented by the API key service.
type PrincipalResolver interface {
	Resolve(ctx context.Context, apiKey string) (*entity.Principal, error)
}

type APIKeyMiddleware struct {
	resolver        PrincipalResolver
	rateLimits      *cache.Cache
	rateLimitPerMin int
}

func NewAPIKeyMiddleware(resolver PrincipalResolver, rateLimitPerMin int) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		resolver:        resolver,
		rateLimits:      cache.New(time.Minute, 5*time.Minute),
		rateLimitPerMin: rateLimitPerMin,
	}
}

// Authenticate extracts the key from X-API-Key (or Authorization: Bearer),
// resolves the principal and stores it in locals. 401 on any failure; the
// response never distinguishes unknown from revoked keys.
func (m *APIKeyMiddleware) Authenticate() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		apiKey := ctx.Get("X-API-Key")
		if apiKey == "" {
			authHeader := ctx.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			}
		}

		if apiKey == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "API key required"))
		}

		principal, err := m.resolver.Resolve(ctx.Context(), apiKey)
		if err != nil || principal == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "invalid API key"))
		}

		if m.rateLimitPerMin > 0 && !m.allow(apiKey) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(fiber.StatusTooManyRequests, "rate limit exceeded, try again in a minute"))
		}

		SetPrincipal(ctx, principal)
		return ctx.Next()
	}
}

// allow implements a fixed one-minute window per key.
func (m *APIKeyMiddleware) allow(apiKey string) bool {
	count, err := m.rateLimits.IncrementInt64(apiKey, 1)
	if err != nil {
		m.rateLimits.Set(apiKey, int64(1), cache.DefaultExpiration)
		return true
	}
	return count <= int64(m.rateLimitPerMin)
}

// SetPrincipal stores the authenticated principal in locals.
func SetPrincipal(ctx *fiber.Ctx, p *entity.Principal) {
	ctx.Locals(principalLocal, p)
}

// GetPrincipal retrieves the authenticated principal from locals.
func GetPrincipal(ctx *fiber.Ctx) (*entity.Principal, bool) {
	p, ok := ctx.Locals(principalLocal).(*entity.Principal)
	return p, ok
}

package middleware

import (
	redisPkg "BudgetGolang/pkg/redis"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimiter         *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
	redisServer         redisPkg.IRedis
}

func New(logger *logrus.Logger, redisServer redisPkg.IRedis) Middleware {
	return &middleware{
		rateLimiter:         newRateLimiter(50, 100),
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
		redisServer:         redisServer,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}

package middleware

import (
	jwtPkg "BudgetGolang/pkg/jwt"
	redisPkg "BudgetGolang/pkg/redis"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions map[string]string
}

func (f *fakeSessionStore) SetSession(_ context.Context, key string, value string, _ time.Duration) error {
	f.sessions[key] = value
	return nil
}

func (f *fakeSessionStore) GetSession(_ context.Context, key string) (string, error) {
	v, ok := f.sessions[key]
	if !ok {
		return "", errors.New("session not found")
	}
	return v, nil
}

func (f *fakeSessionStore) DeleteSession(_ context.Context, key string) error {
	delete(f.sessions, key)
	return nil
}

func newProtectedApp(store redisPkg.IRedis) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	m := New(log, store)

	app := fiber.New()
	app.Get("/protected", m.NewTokenMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestTokenMiddlewareRefusesRevokedToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       "user-1",
		"email":    "user@example.com",
		"username": "user",
	}, time.Hour)
	require.NoError(t, err)

	store := &fakeSessionStore{sessions: make(map[string]string)}
	app := newProtectedApp(store)

	request := func() int {
		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, request())

	// Logout parks the token under the revocation key. The signature still
	// verifies, so only the cache lookup can refuse it.
	require.NoError(t, store.SetSession(context.Background(), redisPkg.RevokedTokenKey(token), "user-1", time.Hour))
	assert.Equal(t, fiber.StatusUnauthorized, request())
}

func TestTokenMiddlewareRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	store := &fakeSessionStore{sessions: make(map[string]string)}
	app := newProtectedApp(store)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

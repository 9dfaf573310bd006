package router

import (
	"net/http"
	"testing"
	"time"

	"dracarys/internal/cache"
	"dracarys/internal/config"
	"dracarys/internal/database"
	"dracarys/internal/mailer"
	"dracarys/internal/service"
	"dracarys/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	tokens, err := service.NewTokenService("test-secret", 30*time.Minute, 15*time.Minute)
	require.NoError(t, err)
	wp := worker.NewPool(1)
	defer wp.Stop()
	cfg := &config.Config{FrontendBaseURL: "https://app.example.com"}

	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, tokens, &mailer.FakeMailer{}, wp, cfg)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodPost + " /api/auth/forgot-password",
		http.MethodPost + " /api/auth/reset-password",
		http.MethodGet + " /api/content/:page",
		http.MethodPost + " /api/content",
		http.MethodPut + " /api/content/:id",
		http.MethodGet + " /api/products",
		http.MethodGet + " /api/products/:id",
		http.MethodPost + " /api/products",
		http.MethodPut + " /api/products/:id",
		http.MethodPost + " /api/ai/process",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

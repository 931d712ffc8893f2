package http

import (
	"carehub/config"
	jwtMocks "carehub/infras/jwt/mocks"
	"carehub/infras/otel/mocks"
	"carehub/internal/handlers/health"
	"carehub/permissions"
	"carehub/transport/http/middleware"
	"carehub/transport/http/router"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	otel := mocks.NewOtel()
	jwtService := jwtMocks.NewMockJWT(gomock.NewController(t))

	healthHandler := health.NewWithChecks(otel, map[string]health.Pinger{
		"postgres": health.PingerFunc(func(context.Context) error { return nil }),
	})

	return New(
		cfg,
		router.New(router.DomainHandlers{}),
		healthHandler,
		middleware.NewAppMiddleware(otel, cfg, nil),
		middleware.NewAuthRoleMiddleware(jwtService, otel, permissions.Get(), cfg),
		nil,
		otel,
	)
}

func TestHTTP_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
			wantBody:   `"postgres":"up"`,
		},
		{
			name:       "protected route without token",
			method:     http.MethodGet,
			path:       "/v1/bookings/parent",
			wantStatus: http.StatusUnauthorized,
			wantBody:   middleware.MsgTokenRequired,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/v2/bookings",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "swagger document",
			method:     http.MethodGet,
			path:       "/swagger/doc.json",
			wantStatus: http.StatusOK,
			wantBody:   "CareHub API",
		},
	}

	server := newTestServer(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHTTP_HealthDuringShutdown(t *testing.T) {
	server := newTestServer(t)
	server.setup()
	require.Equal(t, ServerStateReady, server.State())

	server.setState(ServerStateInGracePeriod)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SERVER PREPARING TO SHUT DOWN")
}

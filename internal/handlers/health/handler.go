package health

import (
	"carehub/infras/otel"
	"carehub/infras/postgres"
	"carehub/shared/constant"
	"carehub/transport/http/response"
	"context"
	"net/http"
	"sort"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Pinger is a dependency the service cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	checks map[string]Pinger
	otel   otel.Otel
}

func New(db *postgres.Connection, client *goRedis.Client, otel otel.Otel) Handler {
	return NewWithChecks(otel, map[string]Pinger{
		"postgres": db,
		"redis": PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}),
	})
}

func NewWithChecks(otel otel.Otel, checks map[string]Pinger) Handler {
	return Handler{
		checks: checks,
		otel:   otel,
	}
}

// Check reports whether every dependency answers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	names := make([]string, 0, len(handler.checks))
	for name := range handler.checks {
		names = append(names, name)
	}

	sort.Strings(names)

	status := Status{Status: "ok", Dependencies: make(map[string]string, len(names))}

	for _, name := range names {
		if err := handler.checks[name].Ping(ctx); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")

			status.Dependencies[name] = "down"
			status.Status = "down"

			continue
		}

		status.Dependencies[name] = "up"
	}

	if status.Status != "ok" {
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}

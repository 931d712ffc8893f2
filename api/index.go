package handler

import (
	"carehub/config"
	"carehub/di"
	"carehub/shared/logger"
	"carehub/shared/timezone"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	server http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid configuration")
		}

		if err := timezone.Setup(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("Invalid APP_TIMEZONE, using UTC")
		}

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}

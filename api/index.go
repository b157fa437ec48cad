package handler

import (
	"net/http"
	"os"
	"sync"

	"careerday/config"
	"careerday/di"
	"careerday/shared/failure"
	"careerday/shared/logger"
	transport "careerday/transport/http"
	"careerday/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	server  *transport.HTTP
	initErr error
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg, os.Stdout)

		server, _, initErr = di.InitializeService()
		if initErr != nil {
			log.Error().Err(initErr).Msg("failed to initialize service")
		}
	})

	if initErr != nil {
		response.WithError(w, failure.InternalError(initErr))

		return
	}

	server.ServeHTTP(w, r)
}

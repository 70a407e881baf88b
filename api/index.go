package handler

import (
	"context"
	"haven/config"
	"haven/di"
	"haven/shared/logger"
	"net/http"
	"sync"
)

var (
	app  *di.Application
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
		app.Bootstrap(context.Background())
	})

	app.HTTP.ServeHTTP(w, r)
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SeaCloudHub/eventually/adapters/httpserver"
	"github.com/SeaCloudHub/eventually/domain/event"
	_ "github.com/SeaCloudHub/eventually/internal/examples"
	"github.com/SeaCloudHub/eventually/pkg/config"
	"github.com/SeaCloudHub/eventually/pkg/logger"
	"github.com/SeaCloudHub/eventually/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot create logger: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	applog, err = logger.NewLogger(cfg.LogLevel, cfg.Debug)
	if err != nil {
		log.Fatalf("cannot create logger: %v\n", err)
	}
	defer logger.Sync(applog)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	for _, decl := range event.DefaultRegistry.All() {
		decl.SetMaxListeners(cfg.Events.MaxListeners)
		if cfg.Events.Strict {
			decl.EnableStrict()
		}
	}

	server, err := httpserver.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Infow("server started!", "addr", addr, "types", len(event.DefaultRegistry.All()))
	applog.Fatal(http.ListenAndServe(addr, server))
}

package main

import (
	"log"
	"os"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/adapters/emitter/listeners"
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/SeaCloudHub/eventually/pkg/config"
	"github.com/SeaCloudHub/eventually/pkg/logger"
	"github.com/SeaCloudHub/eventually/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
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

	warnings := logger.Writer(applog, zapcore.WarnLevel)
	defer warnings.Close()

	options := []emitter.Option{
		emitter.WithOutput(warnings),
		emitter.WithLogger(applog),
	}

	r := &runner{
		out:     os.Stdout,
		options: options,
		report:  sentry.Report,
	}
	if cfg.Debug {
		r.observer = listeners.NewRegistrationLogger(applog)
	}

	if err := r.Run(); err != nil {
		applog.Errorw("demo failed", "error", err)
		sentrygo.Flush(sentry.FlushTime)
		os.Exit(1)
	}

	applog.Info("demo finished")
}

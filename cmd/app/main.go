package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/alnoi/pr-velocity-service/config"
	"github.com/alnoi/pr-velocity-service/internal/github"
	v1 "github.com/alnoi/pr-velocity-service/internal/http/v1"
	"github.com/alnoi/pr-velocity-service/internal/logger"
	"github.com/alnoi/pr-velocity-service/internal/usecase"
)

const serviceName = "pr-velocity-service"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New()
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// --- Observability setup ---

	if cfg.PyroscopeEnabled {
		go runPyroscope(logg, cfg.PyroscopeAddress)
	}

	if cfg.JaegerCollectorURL != "" {
		shutdownTracer := initTracer(logg, cfg.JaegerCollectorURL)
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logg.Error("failed to shutdown tracer", zap.Error(err))
			}
		}()
	}

	go runMetricsServer(logg, cfg.MetricsPort)

	// --- App setup ---

	if cfg.GitHub.Token == "" {
		logg.Warn("GITHUB_TOKEN is not set, using unauthenticated GitHub API access")
	}

	ghClient, err := github.NewClient(&http.Client{Timeout: 30 * time.Second}, cfg.GitHub.Token, cfg.GitHub.APIURL)
	if err != nil {
		logg.Fatal("can not create github client", zap.Error(err))
	}

	useCase := usecase.NewService(ghClient, usecase.WithMaxRangeDays(cfg.Report.MaxRangeDays))

	handler := v1.NewServerHandler(useCase, cfg.Report.Timeout)

	r := v1.NewRouter(handler)
	r.Use(logger.Middleware(logg))

	go func() {
		logg.Info("starting api server", zap.String("port", cfg.HTTPPort))
		if err := r.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := r.Shutdown(shutdownCtx); err != nil {
		logg.Error("failed to shutdown server", zap.Error(err))
	}
}

// --- Pyroscope ---

func runPyroscope(l *zap.Logger, addr string) {
	runtime.SetMutexProfileFraction(1)
	runtime.SetBlockProfileRate(1)

	_, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: serviceName,
		ServerAddress:   addr,

		Logger: pyroscope.StandardLogger,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		l.Fatal("can not set up pyroscope", zap.Error(err))
	}
}

// --- Prometheus ---

func runMetricsServer(l *zap.Logger, port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	l.Info("starting metrics server", zap.String("port", port))

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		l.Fatal("can not start metrics server", zap.Error(err))
	}
}

// --- Tracing (Jaeger) ---

func initTracer(l *zap.Logger, url string) func(context.Context) error {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
	if err != nil {
		l.Fatal("can not create jaeger collector", zap.Error(err))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)

	l.Info("jaeger tracer initialized", zap.String("url", url))

	return tp.Shutdown
}

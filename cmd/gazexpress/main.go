package main

import (
	"context"
	"log/slog"
	"os"

	"gazexpress/config"
	"gazexpress/internal/delivery"
	"gazexpress/internal/delivery/api"
	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/router/handler"
	"gazexpress/internal/infra/auth"
	logs "gazexpress/internal/infra/log"
	"gazexpress/internal/infra/metrics"
	"gazexpress/internal/infra/persistence/postgres"
	"gazexpress/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newRegistry,
		newRecorder,
	)
}

// newRegistry builds the registry served on the metrics endpoint, with the
// Go runtime and process collectors attached.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func newRecorder(reg *prometheus.Registry) (*metrics.Recorder, error) {
	return metrics.NewRecorder(reg)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			metrics.NewMetricsRecorder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAdminService,
			impl.NewStationService,
			impl.NewCourierService,
			impl.NewZoneService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewAdminHandler,
			handler.NewStationHandler,
			handler.NewCourierHandler,
			handler.NewZoneHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

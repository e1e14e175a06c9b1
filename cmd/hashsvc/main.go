package main

import (
	"context"
	"log/slog"
	"os"

	"hashsvc/config"
	"hashsvc/internal/delivery"
	"hashsvc/internal/delivery/api"
	"hashsvc/internal/delivery/api/router/handler"
	"hashsvc/internal/infra/hashing"
	logs "hashsvc/internal/infra/log"
	"hashsvc/internal/infra/workerpool"
	"hashsvc/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
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
		workerpool.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			hashing.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHashingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHashHandler,
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
	for _, d := range params.Deliveries {
		params.Append(fx.StartHook(func() {
			go func() {
				if err := d.Serve(ctx); err != nil {
					params.Logger.Error("Failed to start server", slog.Any("error", err))
					os.Exit(1)
				}
			}()
		}))
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"breachcheck/config"
	"breachcheck/internal/delivery"
	"breachcheck/internal/delivery/api"
	"breachcheck/internal/delivery/api/router/handler"
	"breachcheck/internal/infra/breach"
	logs "breachcheck/internal/infra/log"
	"breachcheck/internal/infra/notification"
	"breachcheck/internal/infra/persistence"
	"breachcheck/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			breach.NewRangeClient,
			breach.NewLookupService,
		),
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewBreachCheckService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewBreachCheckHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Server stopped unexpectedly", slog.Any("error", err))
				if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}

package bootstrap

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"

	"github.com/osse101/FightBet_Go/internal/betting"
	"github.com/osse101/FightBet_Go/internal/config"
	"github.com/osse101/FightBet_Go/internal/event"
	"github.com/osse101/FightBet_Go/internal/fight"
	"github.com/osse101/FightBet_Go/internal/handler"
	"github.com/osse101/FightBet_Go/internal/process"
	"github.com/osse101/FightBet_Go/internal/repository"
	"github.com/osse101/FightBet_Go/internal/server"
	"github.com/osse101/FightBet_Go/internal/settlement"
	"github.com/osse101/FightBet_Go/internal/sse"
	"github.com/osse101/FightBet_Go/internal/worker"
)

// App is the resolved service graph
type App struct {
	Config     *config.Config            `do:""`
	Store      repository.Fights         `do:""`
	Bus        event.Bus                 `do:""`
	Publisher  *event.ResilientPublisher `do:""`
	Fights     fight.Service             `do:""`
	Ledger     betting.Service           `do:""`
	Settlement settlement.Service        `do:""`
	Controller process.Controller        `do:""`
	Pool       *worker.Pool              `do:""`
	Hub        *sse.Hub                  `do:""`
	Server     *server.Server            `do:""`
}

// NewContainer registers every service constructor. Nothing is built until App is invoked.
func NewContainer(ctx context.Context, cfg *config.Config) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, func(i do.Injector) (repository.Fights, error) {
		return OpenStore(ctx, do.MustInvoke[*config.Config](i), true)
	})
	do.Provide(i, provideEventSystem)
	do.Provide(i, func(i do.Injector) (event.Bus, error) {
		// services publish through the retrying front, subscribers attach to the same bus
		return do.MustInvoke[*event.ResilientPublisher](i), nil
	})
	do.Provide(i, provideFightService)
	do.Provide(i, provideBettingService)
	do.Provide(i, provideSettlementService)
	do.Provide(i, provideController)
	do.Provide(i, func(i do.Injector) (*worker.Pool, error) {
		return worker.NewPool(do.MustInvoke[*config.Config](i).WorkerPoolSize, WorkerQueueSize), nil
	})
	do.Provide(i, func(i do.Injector) (*sse.Hub, error) {
		return sse.NewHub(), nil
	})
	do.Provide(i, provideServer)
	do.Provide(i, do.InvokeStruct[App])

	return i
}

// ResolveApp builds the whole graph
func ResolveApp(i do.Injector) (App, error) {
	app, err := do.Invoke[App](i)
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", ErrMsgFailedResolveContainer, err)
	}
	return app, nil
}

func provideEventSystem(i do.Injector) (*event.ResilientPublisher, error) {
	_, publisher, err := InitializeEventSystem(do.MustInvoke[*config.Config](i))
	return publisher, err
}

func provideFightService(i do.Injector) (fight.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return fight.NewService(
		do.MustInvoke[repository.Fights](i),
		do.MustInvoke[event.Bus](i),
		cfg.CacheSize,
		cfg.CacheTTL,
	), nil
}

func provideBettingService(i do.Injector) (betting.Service, error) {
	return betting.NewService(
		do.MustInvoke[repository.Fights](i),
		do.MustInvoke[fight.Service](i),
		do.MustInvoke[event.Bus](i),
	), nil
}

func provideSettlementService(i do.Injector) (settlement.Service, error) {
	return settlement.NewService(
		do.MustInvoke[fight.Service](i),
		do.MustInvoke[betting.Service](i),
	), nil
}

func provideController(i do.Injector) (process.Controller, error) {
	cfg := do.MustInvoke[*config.Config](i)
	profile, err := config.LoadProcessProfile(cfg.ProcessProfilePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadProfile, err)
	}
	launcher := process.NewExecLauncher(profile, cfg.HostURL)
	return process.NewController(do.MustInvoke[fight.Service](i), launcher, cfg.StreamBaseURL, cfg.ProcessInactivityTimeout), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	fights := handler.NewFightHandler(
		do.MustInvoke[fight.Service](i),
		do.MustInvoke[betting.Service](i),
		do.MustInvoke[process.Controller](i),
		do.MustInvoke[settlement.Service](i),
	)
	return server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		BetRateLimit:   cfg.BetRateLimit,
		BetRateBurst:   cfg.BetRateBurst,
	}, do.MustInvoke[repository.Fights](i), fights, do.MustInvoke[*sse.Hub](i)), nil
}

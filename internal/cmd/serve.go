package cmd

import (
	"context"
	"time"

	"github.com/jobscout-in/jobscout/internal/aggregate"
	"github.com/jobscout-in/jobscout/internal/api"
	"github.com/jobscout-in/jobscout/internal/config"
	"github.com/jobscout-in/jobscout/internal/llm"
	"github.com/jobscout-in/jobscout/internal/network"
	"github.com/jobscout-in/jobscout/internal/store"
)

type ServeCmd struct {
	Addr    string `help:"Listen address (host:port)." env:"JOBSCOUT_LISTEN_ADDR"`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBSCOUT_PROXIES"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	if s.Addr != "" {
		cfg.ListenAddr = s.Addr
	}

	client, err := buildClient(cfg, s.Proxies)
	if err != nil {
		return err
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var (
		enforcer  aggregate.Enforcer
		insighter api.Insighter
	)
	if key := config.GeminiAPIKey(); key != "" {
		svc, err := llm.New(bootCtx, key, ctx.Logger)
		if err != nil {
			return err
		}
		enforcer = svc
		insighter = svc
	} else {
		ctx.Logger.Warn().Msg("GEMINI_API_KEY not set; strict validation and insights disabled")
	}

	var st store.Store
	if uri, ok := config.MongoURI(); ok {
		mongoStore, err := store.NewMongo(bootCtx, uri, ctx.Logger)
		if err != nil {
			return err
		}
		defer mongoStore.Close(context.Background())
		st = mongoStore
	} else {
		ctx.Logger.Warn().Msg("MongoDB not configured; saved jobs are kept in memory only")
		st = store.NewMemory()
	}

	aggregator := aggregate.New(client, cfg, enforcer, ctx.Logger)
	server, err := api.NewServer(aggregator, st, insighter, cfg, ctx.Logger)
	if err != nil {
		return err
	}

	ctx.Logger.Info().Str("addr", cfg.ListenAddr).Msg("starting jobscout API")
	return server.Router().Run(cfg.ListenAddr)
}

func buildClient(cfg config.Config, proxiesFlag string) (*network.Client, error) {
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}

	return network.NewClient(rotator, time.Duration(cfg.RequestTimeout)*time.Second)
}

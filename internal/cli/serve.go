package cli

import (
	"fmt"

	"farmerbot/internal/adapter/host/hostclient"
	httpadapter "farmerbot/internal/adapter/http"
	"farmerbot/internal/adapter/logging"
	metricsinmem "farmerbot/internal/adapter/metrics/inmemory"
	"farmerbot/internal/adapter/random"
	"farmerbot/internal/app/ports"
	"farmerbot/internal/app/replay"
	"farmerbot/internal/app/tick"
	"farmerbot/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/cobra"
)

func (a *App) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve bot ticks over HTTP",
		Long: `Serve POST /api/bot/tick. Each request carries one bot state; the bot
talks to the host at FARMERBOT_HOST_URL while deciding.

Also serves GET /api/bot/replay, GET /ops/kpi and GET /healthz.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return a.serve(cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides "+config.EnvAddr+")")
	return cmd
}

func (a *App) serve(cfg config.Config) error {
	if cfg.HostURL == "" {
		return fmt.Errorf("%s is required", config.EnvHostURL)
	}
	logger := a.logger(cfg)
	host, err := hostclient.New(hostclient.Config{BaseURL: cfg.HostURL, Timeout: cfg.HostTimeout})
	if err != nil {
		return err
	}
	decisions, err := journal(cfg, logger)
	if err != nil {
		return err
	}
	kpiRecorder := metricsinmem.NewRecorder()
	local := logging.NewSlog(logger)

	h := httpadapter.Handler{
		TickUC: tick.UseCase{
			Rand:      random.New(cfg.Seed),
			Decisions: decisions,
			Metrics:   kpiRecorder,
			Tuning:    cfg.Tuning,
		},
		ReplayUC: replay.UseCase{Decisions: decisions},
		KPI:      kpiRecorder,
		BindHost: func(botID string) ports.Host {
			c := host.ForBot(botID)
			c.Fallback = local.ForBot(botID)
			return c
		},
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info("farmerbot listening", "addr", cfg.Addr, "host", cfg.HostURL)
	s.Spin()
	return nil
}

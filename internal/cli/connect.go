package cli

import (
	"context"
	"log/slog"
	"time"

	"farmerbot/internal/adapter/host/hostws"
	metricsinmem "farmerbot/internal/adapter/metrics/inmemory"
	"farmerbot/internal/adapter/random"
	"farmerbot/internal/app/tick"
	"farmerbot/internal/config"
	"farmerbot/internal/domain/farm"

	"github.com/spf13/cobra"
)

const reconnectDelay = 5 * time.Second

func (a *App) newConnectCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Follow a host that pushes ticks over a websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if url != "" {
				cfg.WSURL = url
			}
			return a.connect(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Host websocket URL (overrides "+config.EnvWSURL+")")
	return cmd
}

// connect keeps a session open until ctx ends, redialing after failures.
func (a *App) connect(ctx context.Context, cfg config.Config) error {
	logger := a.logger(cfg)
	decisions, err := journal(cfg, logger)
	if err != nil {
		return err
	}
	base := tick.UseCase{
		Rand:      random.New(cfg.Seed),
		Decisions: decisions,
		Metrics:   metricsinmem.NewRecorder(),
		Tuning:    cfg.Tuning,
	}

	for {
		s, err := hostws.Dial(ctx, cfg.WSURL, hostws.Options{CommandTimeout: cfg.HostTimeout, Logger: logger})
		if err == nil {
			logger.Info("connected to host", "url", cfg.WSURL)
			err = s.Run(ctx, func(ctx context.Context, bot farm.BotState) {
				runSessionTick(ctx, base, s.ForBot(bot.ID), bot, logger)
			})
		}
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn("host session ended, reconnecting", "error", err, "delay", reconnectDelay)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func runSessionTick(ctx context.Context, uc tick.UseCase, host hostws.BotHost, bot farm.BotState, logger *slog.Logger) {
	uc.Farm, uc.Market, uc.Actuator, uc.Log = host, host, host, host
	resp, err := uc.Execute(ctx, tick.Request{Bot: bot})
	if err != nil {
		logger.Error("tick failed", "bot_id", bot.ID, "error", err)
		return
	}
	d := resp.Decision
	logger.Debug("tick", "bot_id", d.BotID, "tick_id", d.TickID, "action", string(d.ActionKind()), "candidates", d.CandidateCount)
}

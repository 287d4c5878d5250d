package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cufee/botto-register/config"
	db "github.com/cufee/botto-register/database"
	"github.com/cufee/botto-register/handlers"
	"github.com/cufee/botto-register/metrics"
	"github.com/cufee/botto-register/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine, the token can come from the environment
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "botto-register",
		Usage: "Registration form and reaction roles for one Discord server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", EnvVars: []string{"DISCORD_TOKEN"}, Usage: "bot token"},
			&cli.StringFlag{Name: "store", EnvVars: []string{"SETTINGS_STORE"}, Value: config.StoreJSON, Usage: "settings backend, json or bolt"},
			&cli.StringFlag{Name: "settings", EnvVars: []string{"SETTINGS_PATH"}, Usage: "settings file path"},
			&cli.StringFlag{Name: "keepalive", EnvVars: []string{"KEEPALIVE_ADDR"}, Value: config.DefaultKeepAlive, Usage: "keep-alive http address, empty disables it"},
			&cli.StringFlag{Name: "guild", EnvVars: []string{"DISCORD_GUILD_ID"}, Usage: "register commands in this guild only"},
			&cli.BoolFlag{Name: "debug", EnvVars: []string{"DEBUG"}, Usage: "development logging"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Config{
				Token:         c.String("token"),
				Store:         c.String("store"),
				SettingsPath:  c.String("settings"),
				KeepAliveAddr: c.String("keepalive"),
				GuildID:       c.String("guild"),
				Debug:         c.Bool("debug"),
			}
			if cfg.SettingsPath == "" {
				cfg.SettingsPath = config.DefaultSettingsFile
				if cfg.Store == config.StoreBolt {
					cfg.SettingsPath = config.DefaultBoltFile
				}
			}
			return run(cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openStore(cfg config.Config, logger *zap.Logger) (db.Store, error) {
	switch cfg.Store {
	case config.StoreBolt:
		return db.NewBoltStore(cfg.SettingsPath, logger)
	default:
		return db.NewFileStore(cfg.SettingsPath, logger), nil
	}
}

func run(cfg config.Config) error {
	// Nothing connects before the config is valid
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	dg.Identify.Intents = config.Intents

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := handlers.New(handlers.NewSession(dg), store, logger, metrics.New(reg))
	dg.AddHandler(h.InteractionCreate)
	dg.AddHandler(h.ReactionAdd)
	dg.AddHandler(h.ReactionRemove)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("logged in", zap.String("user", r.User.Username), zap.String("id", r.User.ID))
		if _, err := s.ApplicationCommandBulkOverwrite(r.User.ID, cfg.GuildID, h.Commands()); err != nil {
			logger.Error("failed to sync commands", zap.Error(err))
			return
		}
		logger.Info("command tree synced", zap.String("guild", cfg.GuildID))
	})

	var keepAlive *server.Server
	if cfg.KeepAliveAddr != "" {
		keepAlive = server.New(cfg.KeepAliveAddr, server.Router(reg, func() bool { return dg.DataReady }), logger)
		keepAlive.Start()
	}

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer dg.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	if keepAlive != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := keepAlive.Shutdown(ctx); err != nil {
			logger.Warn("keep-alive shutdown", zap.Error(err))
		}
	}
	return nil
}

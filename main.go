package main

import (
	"github.com/DedS3t/monopoly-simulator/app/controllers"
	"github.com/DedS3t/monopoly-simulator/pkg/routes"
	"github.com/DedS3t/monopoly-simulator/platform/cache"
	"github.com/DedS3t/monopoly-simulator/platform/config"
	"github.com/DedS3t/monopoly-simulator/platform/database"
	"github.com/DedS3t/monopoly-simulator/platform/logging"
	"github.com/DedS3t/monopoly-simulator/platform/queries"
	socket "github.com/DedS3t/monopoly-simulator/platform/sockets"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)

	h := controllers.NewHandler(cfg)

	if cfg.RedisURL != "" {
		pool := cache.CreateRedisPool(cfg.RedisURL)
		defer pool.Close()
		h.Stats = cache.NewTally(pool)
	}

	if cfg.Database.Addr != "" {
		db := database.PostgreSQLConnection(cfg.Database)
		defer db.Close()
		if err := database.CreateSchema(db); err != nil {
			logrus.WithError(err).Warn("history disabled")
		} else {
			h.History = queries.NewHistory(db)
		}
	}

	if cfg.SocketPort != 0 {
		server, err := socket.NewServer(logrus.WithField("component", "socket"))
		if err != nil {
			logrus.WithError(err).Fatal("failed creating socket.io server")
		}
		go func() {
			if err := server.ListenAndServe(cfg.SocketAddr(), cfg.AllowedOrigins); err != nil {
				logrus.WithError(err).Error("socket.io server stopped")
			}
		}()
	}

	logrus.WithFields(logrus.Fields{
		"addr":        cfg.Addr(),
		"environment": cfg.Environment,
		"redis":       h.Stats != nil,
		"history":     h.History != nil,
	}).Info("starting " + cfg.ProjectName)

	app := routes.NewApp(h)
	if err := app.Listen(cfg.Addr()); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

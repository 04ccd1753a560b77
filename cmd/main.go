package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	v1 "github.com/thesrcielos/CodingTracker/api/v1"
	"github.com/thesrcielos/CodingTracker/internal/config"
	"github.com/thesrcielos/CodingTracker/internal/platform"
	"github.com/thesrcielos/CodingTracker/internal/user"
	"github.com/thesrcielos/CodingTracker/pkg/db"
	"github.com/thesrcielos/CodingTracker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db.Init(cfg)
	if err := db.Migrate(db.DB, &user.User{}, &platform.PlatformStat{}); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	var revoker user.TokenRevoker = user.NoopTokenRevoker{}
	if db.Rdb != nil {
		revoker = user.NewRedisTokenRevoker(db.Rdb)
	}

	userService := user.NewUserService(user.NewUserRepository(db.DB), revoker, cfg.JWTSecret, cfg.BcryptCost)
	statsService := platform.NewStatsService(platform.NewStatsRepository(db.DB))

	e := v1.NewRouter(v1.RouterConfig{
		Users:       userService,
		Stats:       statsService,
		DB:          db.DB,
		CORSOrigins: cfg.CORSOrigins,
	})

	go func() {
		log.WithField("port", cfg.ServerPort).Info("Server running")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
	if db.Rdb != nil {
		_ = db.Rdb.Close()
	}
}

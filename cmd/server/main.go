package main

//	@title			ProjetFlow API
//	@version		1.0
//	@description	Teams, projects, milestones and tasks.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Access token returned by /auth/login (e.g., "Bearer <id>|<secret>")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projetflow/api/internal/bootstrap"
	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/infra/cache"
	dbpkg "github.com/projetflow/api/internal/infra/db"
	"github.com/projetflow/api/internal/modules/handler"
	"github.com/projetflow/api/internal/modules/service"
	"github.com/projetflow/api/internal/pkg/validate"
	"github.com/projetflow/api/internal/router"
	"github.com/projetflow/api/internal/telemetry"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	// Setup OpenTelemetry tracing
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// plugins need the tracer provider to be set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		}
		if rdb != nil {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
			}
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)
	validate.Init()

	engine := router.NewRouter(router.RouterDeps{
		Config:              cfg,
		DB:                  db,
		Log:                 log,
		Auth:                do.MustInvoke[service.AuthService](inj),
		AuthHandler:         do.MustInvoke[*handler.AuthHandler](inj),
		UserHandler:         do.MustInvoke[*handler.UserHandler](inj),
		SkillHandler:        do.MustInvoke[*handler.SkillHandler](inj),
		TeamHandler:         do.MustInvoke[*handler.TeamHandler](inj),
		ProjectHandler:      do.MustInvoke[*handler.ProjectHandler](inj),
		MilestoneHandler:    do.MustInvoke[*handler.MilestoneHandler](inj),
		TaskHandler:         do.MustInvoke[*handler.TaskHandler](inj),
		CommentHandler:      do.MustInvoke[*handler.CommentHandler](inj),
		ReportHandler:       do.MustInvoke[*handler.ReportHandler](inj),
		TagHandler:          do.MustInvoke[*handler.TagHandler](inj),
		AttachmentHandler:   do.MustInvoke[*handler.AttachmentHandler](inj),
		NotificationHandler: do.MustInvoke[*handler.NotificationHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	if conn := do.MustInvoke[*amqp.Connection](inj); conn != nil {
		_ = conn.Close()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Sugar().Info("server exited")
}

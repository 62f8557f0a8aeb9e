package bootstrap

import (
	"context"
	"time"

	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/infra/cache"
	"github.com/projetflow/api/internal/infra/db"
	"github.com/projetflow/api/internal/infra/logger"
	"github.com/projetflow/api/internal/infra/queue"
	"github.com/projetflow/api/internal/modules/handler"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level, cfg.App.Env)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis, nil when no address is configured
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (cache.TokenCache, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ttl := time.Duration(cfg.Auth.TokenCacheTTL) * time.Second
		return cache.NewTokenCache(do.MustInvoke[*redis.Client](i), ttl), nil
	})

	// RabbitMQ Connection, nil when no URL is configured
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		conn := do.MustInvoke[*amqp.Connection](i)
		if conn == nil {
			log.Sugar().Infow("rabbitmq disabled, task assignment events are not published")
			return nil, nil
		}
		p, err := queue.NewPublisher(conn, cfg.RabbitMQ.Queue, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	})

	// Storage
	do.Provide(inj, func(i *do.Injector) (blob.Storage, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Storage.Driver == "s3" {
			return blob.NewS3(context.Background(), cfg)
		}
		return blob.NewLocal(cfg.Storage.LocalRoot), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TokenRepo, error) {
		return repo.NewTokenRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SkillRepo, error) {
		return repo.NewSkillRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TeamRepo, error) {
		return repo.NewTeamRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MilestoneRepo, error) {
		return repo.NewMilestoneRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TagRepo, error) {
		return repo.NewTagRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CommentRepo, error) {
		return repo.NewCommentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReportRepo, error) {
		return repo.NewReportRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AttachmentRepo, error) {
		return repo.NewAttachmentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.NotificationRepo, error) {
		return repo.NewNotificationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.TokenRepo](i),
			do.MustInvoke[cache.TokenCache](i),
			do.MustInvoke[blob.Storage](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[blob.Storage](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SkillService, error) {
		return service.NewSkillService(do.MustInvoke[repo.SkillRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TeamService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewTeamService(do.MustInvoke[repo.TeamRepo](i), cfg.Auth.DefaultTeamRole), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MilestoneService, error) {
		return service.NewMilestoneService(
			do.MustInvoke[repo.MilestoneRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TagService, error) {
		return service.NewTagService(do.MustInvoke[repo.TagRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CommentService, error) {
		return service.NewCommentService(
			do.MustInvoke[repo.CommentRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.UserRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReportService, error) {
		return service.NewReportService(
			do.MustInvoke[repo.ReportRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AttachmentService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewAttachmentService(
			do.MustInvoke[repo.AttachmentRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[blob.Storage](i),
			cfg.Storage.AttachmentPrefix,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NotificationService, error) {
		return service.NewNotificationService(
			do.MustInvoke[repo.NotificationRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SkillHandler, error) {
		return handler.NewSkillHandler(do.MustInvoke[service.SkillService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TeamHandler, error) {
		return handler.NewTeamHandler(do.MustInvoke[service.TeamService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.MilestoneService](i),
			do.MustInvoke[service.TaskService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MilestoneHandler, error) {
		return handler.NewMilestoneHandler(do.MustInvoke[service.MilestoneService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CommentHandler, error) {
		return handler.NewCommentHandler(do.MustInvoke[service.CommentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ReportHandler, error) {
		return handler.NewReportHandler(do.MustInvoke[service.ReportService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TagHandler, error) {
		return handler.NewTagHandler(do.MustInvoke[service.TagService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AttachmentHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		maxBytes := int64(cfg.Storage.MaxUploadMB) << 20
		return handler.NewAttachmentHandler(do.MustInvoke[service.AttachmentService](i), maxBytes), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NotificationHandler, error) {
		return handler.NewNotificationHandler(do.MustInvoke[service.NotificationService](i)), nil
	})

	return inj
}

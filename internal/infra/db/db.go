package db

import (
	"fmt"
	"time"

	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/modules/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		// surface FK / unique violations as gorm.ErrForeignKeyViolated / gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	if cfg.App.Env == "debug" {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), gcfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return d, nil
}

// Migrate creates the schema. Cascades live in the FK constraints declared on the models.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&model.User{},
		&model.AccessToken{},
		&model.Skill{},
		&model.Team{},
		&model.TeamMember{},
		&model.Project{},
		&model.Milestone{},
		&model.Tag{},
		&model.Task{},
		&model.Comment{},
		&model.Report{},
		&model.Attachment{},
		&model.Notification{},
	)
}

func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

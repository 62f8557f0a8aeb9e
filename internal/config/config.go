package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type AuthCfg struct {
	TokenName       string
	TokenCacheTTL   int
	BcryptCost      int
	DefaultTeamRole string
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	URL   string
	Queue string
}

type StorageCfg struct {
	Driver           string
	LocalRoot        string
	AttachmentPrefix string
	PhotoPrefix      string
	MaxUploadMB      int
}

type S3Cfg struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UsePathStyle bool
	SSE          string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type CORSCfg struct {
	AllowOrigins []string
}

type Config struct {
	App       AppCfg
	Auth      AuthCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	Storage   StorageCfg
	S3        S3Cfg
	Telemetry TelemetryCfg
	CORS      CORSCfg
}

func Load() (*Config, error) {
	// .env is optional, real env vars always win
	_ = godotenv.Load()

	base := newViper()

	if err := base.ReadInConfig(); err == nil {
		// expand ${ENV} once before parsing
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := newViper()
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		return unmarshal(v)
	}

	// No file: env + defaults only
	return unmarshal(base)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP") // e.g. APP_DATABASE_DSN -> database.dsn
	setDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "projetflow-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("auth.tokenName", "auth_token")
	v.SetDefault("auth.tokenCacheTTL", 900)
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.defaultTeamRole", "membre")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.queue", "notifications")
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.localRoot", "./storage/public")
	v.SetDefault("storage.attachmentPrefix", "pieces_jointes")
	v.SetDefault("storage.photoPrefix", "photo_profils")
	v.SetDefault("storage.maxUploadMB", 20)
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("telemetry.sampleRatio", 1.0)
	v.SetDefault("cors.allowOrigins", []string{"http://localhost:5173"})
}

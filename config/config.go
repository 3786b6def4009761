package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Env string `env:"ENV" env-default:"dev"`

	DashboardAddr   string `env:"DASHBOARD_ADDR" env-default:":8084"`
	DashboardSvcURL string `env:"DASHBOARD_SVC_URL" env-default:"http://localhost:8084"`
	GatewayAddr     string `env:"GATEWAY_ADDR" env-default:":8080"`
	FoodsAPIURL     string `env:"FOODS_API_URL" env-default:"http://localhost:3333"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:8080"`

	Redis    RedisConfig
	Kafka    KafkaConfig
	Postgres PostgresConfig
}

type RedisConfig struct {
	Host        string        `env:"REDIS_HOST"`
	Port        string        `env:"REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" env-default:"24h"`
}

type KafkaConfig struct {
	Broker string `env:"KAFKA_BROKER"`
	Topic  string `env:"KAFKA_TOPIC" env-default:"food-events"`
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-default:"dashboard"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool { return c.Host != "" }

func (c KafkaConfig) Enabled() bool { return c.Broker != "" }

func (c PostgresConfig) Enabled() bool { return c.Host != "" }

func (c PostgresConfig) ConnString() string {
	return "host=" + c.Host + " port=" + c.Port + " user=" + c.User +
		" password=" + c.Password + " dbname=" + c.Name + " sslmode=disable"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	return cfg
}

func MustInitPostgres(cfg PostgresConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}
}

// main.go
package main

import (
	"context"
	"log"
	"time"

	"museumpass/cmd"
	"museumpass/internal/data/repository"
	"museumpass/internal/usecase"
	"museumpass/internal/wire"
	"museumpass/pkg/database"
	"museumpass/pkg/events"
	"museumpass/pkg/llm"
	"museumpass/pkg/lock"
	"museumpass/pkg/utils"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	envFile := pflag.String("env", ".env", "path to the env file")
	pflag.Parse()

	// Load config
	config, err := utils.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("ledger", config.Ledger.Driver),
		zap.String("lock", config.Lock.Driver),
	)

	catalog, err := repository.LoadCatalog(config.Catalog.Path, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	// Ledger: JSON file by default, Postgres when configured
	var db database.PgxIface
	if config.Ledger.Driver == "postgres" {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("Database connected successfully")
	}
	ledger := repository.NewLedger(config.Ledger.Driver, config.Ledger.Path, db, logger)

	repos := repository.NewRepository(catalog, ledger)

	deps := usecase.Dependencies{
		Locker:    newLocker(config, logger),
		Publisher: newPublisher(config, logger),
	}
	defer deps.Publisher.Close()

	assistant, err := llm.NewOllama(config.Ollama.URL, config.Ollama.Model, config.Ollama.Timeout, logger)
	if err != nil {
		logger.Warn("Assistant disabled", zap.Error(err))
	} else {
		deps.Assistant = assistant
	}

	// Wire all dependencies
	app := wire.Wiring(repos, deps, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, config.Ollama.Timeout+30*time.Second, logger)
}

func newLocker(config *utils.Config, logger *zap.Logger) lock.Locker {
	if config.Lock.Driver != "redis" {
		return lock.NewLocal()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err), zap.String("addr", config.Redis.Addr))
	}

	logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
	return lock.NewRedis(client, config.Lock.TTL, logger)
}

func newPublisher(config *utils.Config, logger *zap.Logger) events.Publisher {
	if !config.Kafka.Enabled {
		return events.Noop{}
	}

	logger.Info("Publishing booking events",
		zap.Strings("brokers", config.Kafka.Brokers),
		zap.String("topic", config.Kafka.Topic))
	return events.NewKafka(config.Kafka.Brokers, config.Kafka.Topic, logger)
}

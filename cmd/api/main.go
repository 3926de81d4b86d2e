package main

import (
	"context"
	"fmt"

	_ "inventory-srv/docs" // Import swagger docs

	"inventory-srv/config"
	configKafka "inventory-srv/config/kafka"
	configPostgre "inventory-srv/config/postgre"
	configRedis "inventory-srv/config/redis"
	"inventory-srv/internal/httpserver"
	"inventory-srv/pkg/encrypter"
	pkgJWT "inventory-srv/pkg/jwt"
	"inventory-srv/pkg/log"
)

//go:generate swag init -g main.go -d ./,../../internal -o ../../docs --outputTypes go,json

// @title       Inventory Service API
// @description Equipment receptions, deliveries and account authentication.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token, "Bearer {token}". The accessToken cookie is accepted when the header is absent.
func main() {
	// 1. Load configuration
	// Reads config from YAML file, .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer func() {
		if err := configPostgre.Disconnect(postgresDB); err != nil {
			logger.Warnf(ctx, "PostgreSQL disconnect: %v", err)
		}
	}()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis (optional)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer func() {
		if err := configRedis.Disconnect(redisClient); err != nil {
			logger.Warnf(ctx, "Redis disconnect: %v", err)
		}
	}()
	if redisClient != nil {
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize Kafka producer (optional)
	kafkaProducer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer func() {
		if err := configKafka.Disconnect(kafkaProducer); err != nil {
			logger.Warnf(ctx, "Kafka disconnect: %v", err)
		}
	}()
	if kafkaProducer != nil {
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 6. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey:  cfg.JWT.SecretKey,
		Issuer:     cfg.JWT.Issuer,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized (refresh ttl %s)", cfg.JWT.RefreshTTL)

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: postgresDB,

		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,

		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypter.New(cfg.Encrypter.BcryptCost),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

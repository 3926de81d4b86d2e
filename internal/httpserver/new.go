package httpserver

import (
	"database/sql"
	"errors"

	"inventory-srv/config"
	"inventory-srv/pkg/encrypter"
	pkgJWT "inventory-srv/pkg/jwt"
	pkgKafka "inventory-srv/pkg/kafka"
	"inventory-srv/pkg/log"
	pkgRedis "inventory-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Optional infrastructure, nil when disabled
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager
	encrypter  encrypter.Encrypter
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Optional infrastructure
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager
	Encrypter  encrypter.Encrypter
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB: cfg.PostgresDB,

		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	return nil
}

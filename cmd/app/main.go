package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/user-service/internal/config"
	"github.com/BloggingApp/user-service/internal/handler"
	"github.com/BloggingApp/user-service/internal/repository"
	"github.com/BloggingApp/user-service/internal/repository/postgres"
	"github.com/BloggingApp/user-service/internal/repository/sqlite"
	"github.com/BloggingApp/user-service/internal/server"
	"github.com/BloggingApp/user-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	dbConfig := config.DBConfig{
		Driver:       viper.GetString("db.driver"),
		Username:     os.Getenv("POSTGRES_USER"),
		Password:     os.Getenv("POSTGRES_PASSWORD"),
		Host:         os.Getenv("POSTGRES_HOST"),
		Port:         os.Getenv("POSTGRES_PORT"),
		DBName:       os.Getenv("POSTGRES_DATABASE"),
		SSLMode:      os.Getenv("POSTGRES_SSLMODE"),
		Path:         viper.GetString("db.path"),
		QueryTimeout: viper.GetDuration("db.query-timeout"),
	}
	repos, closeDB := openRepository(ctx, logger, dbConfig)
	defer closeDB()

	appConfig := config.NewAppConfig()
	services := service.New(logger, repos, appConfig)

	gin.SetMode(gin.ReleaseMode)
	handlers := handler.New(services, logger, appConfig)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func(srv *server.Server, cfg config.ServerConfig) {
		if err := srv.Run(cfg); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}(srv, serverConfig)

	logger.Sugar().Infof("Server started on port %s", serverConfig.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

// openRepository connects to the configured driver. The returned func releases the pool.
func openRepository(ctx context.Context, logger *zap.Logger, cfg config.DBConfig) (*repository.Repository, func()) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Path)
		if err != nil {
			logger.Sugar().Panicf("failed to open sqlite database(%s): %s", cfg.Path, err.Error())
		}
		logger.Sugar().Infof("Successfully opened SQLite database: %s", cfg.Path)
		return repository.NewSQLite(db, cfg.QueryTimeout), func() { _ = db.Close() }
	case config.DriverPostgres:
		db, err := postgres.DB(ctx, cfg)
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		if err := db.Ping(ctx); err != nil {
			logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
		}
		logger.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgres(db, cfg.QueryTimeout), db.Close
	default:
		logger.Sugar().Panicf("unsupported db.driver %q", cfg.Driver)
		return nil, nil
	}
}

// loadEnv reads .env when present; deployments that set real env vars don't need one.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func initConfig() error {
	config.SetDefaults()
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sicko7947/colorstore"
	"github.com/sicko7947/colorstore/broker"
	"github.com/sicko7947/colorstore/gateway"
	"github.com/sicko7947/colorstore/service"
	"github.com/sicko7947/colorstore/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	cfg, err := colorstore.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}

	// With a tenant role configured, every request runs on brokered
	// per-tenant credentials. Without one, the process credentials are
	// shared across tenants (local development).
	var factory gateway.ServiceFactory
	if cfg.TenantRoleARN != "" {
		stsBroker := broker.NewSTSBroker(sts.NewFromConfig(awsCfg), cfg.TenantRoleARN, cfg.TenantSessionDuration)
		factory = gateway.NewTenantServiceFactory(stsBroker, awsCfg, cfg.TableName, cfg.TenantIndexName, log.Logger)
	} else {
		colorStore := store.NewDynamoDBStore(dynamodb.NewFromConfig(awsCfg), cfg.TableName, cfg.TenantIndexName)
		svc := service.NewColorService(colorStore, service.WithLogger(log.Logger))
		factory = gateway.StaticServiceFactory(svc)
	}

	gw := gateway.New(factory,
		gateway.WithLogger(log.Logger),
		gateway.WithCORSOrigin(cfg.WebsiteURL),
	)

	app := fiber.New()
	gw.RegisterRoutes(app)

	go func() {
		log.Info().Str("address", cfg.ListenAddr).Msg("Starting HTTP server")
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

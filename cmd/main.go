package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	restctx "github.com/dtroode/pits-server/internal/api/rest/context"
	"github.com/dtroode/pits-server/internal/api/rest/router"
	restServer "github.com/dtroode/pits-server/internal/api/rest/server"
	"github.com/dtroode/pits-server/internal/config"
	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/mqtt"
	"github.com/dtroode/pits-server/internal/oauth"
	"github.com/dtroode/pits-server/internal/query"
	"github.com/dtroode/pits-server/internal/repository/dynamo"
	"github.com/dtroode/pits-server/internal/repository/postgres"
	"github.com/dtroode/pits-server/internal/server"
	"github.com/dtroode/pits-server/internal/service"
	storage "github.com/dtroode/pits-server/internal/storage/minio"
	"github.com/dtroode/pits-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	devices model.DeviceStore
	users   model.UserStore
	owners  model.DeviceOwnerStore
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	st, err := newStores(ctx, cfg, db)
	if err != nil {
		logger.Fatal("failed to initialize stores", "driver", cfg.StorageDriver, "error", err)
	}

	nonceRepo := postgres.NewNonceRepository(db)
	clientConfigRepo := postgres.NewClientConfigRepository(db)
	tokenManager := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)

	providers := oauth.FromConfig(oauth.Config{
		PublicURL: cfg.HTTP.PublicURL,
		Google:    oauth.Credentials(cfg.OAuth.Google),
		GitHub:    oauth.Credentials(cfg.OAuth.GitHub),
		Amazon:    oauth.Credentials(cfg.OAuth.Amazon),
	})
	if len(providers) == 0 {
		logger.Warn("no identity providers configured")
	}

	storageClient, err := storage.NewClient(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	sessions := service.NewSessions(tokenManager, clientConfigRepo, logger)
	authService := service.NewAuth(providers, nonceRepo, st.users, clientConfigRepo, tokenManager, logger)
	deviceService := service.NewDevices(
		st.devices, st.users, st.owners, storageClient,
		query.NewSealer(cfg.Cursor.Secret),
		service.CaptureConfig{ImagePrefix: cfg.Storage.ImagePrefix, URLTTL: cfg.Storage.URLTTL},
		logger,
	)
	userService := service.NewUsers(st.users, logger)
	ctxMgr := restctx.NewManager()

	handler := router.New(authService, deviceService, userService, sessions, ctxMgr, db, logger).Register()
	httpServer := restServer.NewHTTPServer(handler, cfg.HTTP.Address)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var broker *mqtt.Client
	if cfg.MQTT.Enabled {
		broker, err = startReportIngestion(ctx, cfg.MQTT, service.NewDeviceReports(st.devices, logger), logger)
		if err != nil {
			logger.Fatal("failed to start device report ingestion", "error", err)
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}
	if broker != nil {
		if err := broker.Close(); err != nil {
			logger.Error("error during mqtt disconnect", "error", err)
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newStores picks the device, user and ownership stores for the configured driver.
// Nonces and client configs always live in postgres.
func newStores(ctx context.Context, cfg *config.Config, db *postgres.Connection) (stores, error) {
	if cfg.StorageDriver != config.DriverDynamoDB {
		return stores{
			devices: postgres.NewDeviceRepository(db),
			users:   postgres.NewUserRepository(db),
			owners:  postgres.NewDeviceOwnerRepository(db),
		}, nil
	}

	client, err := dynamo.NewClient(ctx, dynamo.Options{
		Region:    cfg.DynamoDB.Region,
		Endpoint:  cfg.DynamoDB.Endpoint,
		AccessKey: cfg.DynamoDB.AccessKey,
		SecretKey: cfg.DynamoDB.SecretKey,
	})
	if err != nil {
		return stores{}, err
	}

	return stores{
		devices: dynamo.NewDeviceRepository(client, cfg.DynamoDB.DevicesTable),
		users:   dynamo.NewUserRepository(client, cfg.DynamoDB.UsersTable),
		owners:  dynamo.NewDeviceOwnerRepository(client, cfg.DynamoDB.DeviceOwnerTable),
	}, nil
}

func startReportIngestion(ctx context.Context, cfg config.MQTT, reporter mqtt.DeviceReporter, logger *logger.Logger) (*mqtt.Client, error) {
	client, err := mqtt.Connect(mqtt.Config{
		BrokerURL: cfg.BrokerURL,
		ClientID:  cfg.ClientID,
		Username:  cfg.Username,
		Password:  cfg.Password,
	}, logger)
	if err != nil {
		return nil, err
	}

	topic := cfg.Topic
	if topic == "" {
		topic = mqtt.AllReportsTopic()
	}

	if err := client.Subscribe(topic, cfg.QoS, mqtt.NewReportHandler(ctx, reporter, logger)); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("subscribed to device reports", "topic", topic)
	return client, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

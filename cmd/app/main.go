package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tracking/cmd"
	trackinghttp "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/natsnotifier"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/adapters/out/postgres/unitrepo"
	"tracking/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	publisher := createPublisher(configs, logger)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		publisher,
		parseStaleThreshold(configs.HoldStaleThreshold),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		NATSUrl:            goDotEnvVariable("NATS_URL"),
		NATSSubject:        goDotEnvVariable("NATS_SUBJECT"),
		HoldStaleThreshold: goDotEnvVariable("HOLD_STALE_THRESHOLD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&unitrepo.UnitDTO{},
		&unitrepo.AuditEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

// createPublisher connects to NATS when a URL is configured and falls back
// to log-only notifications otherwise.
func createPublisher(configs cmd.Config, logger *slog.Logger) ports.NotificationPublisher {
	if configs.NATSUrl == "" {
		return natsnotifier.NewLogPublisher(logger)
	}

	publisher, err := natsnotifier.NewNATSPublisher(configs.NATSUrl, configs.NATSSubject)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	return publisher
}

func parseStaleThreshold(value string) time.Duration {
	if value == "" {
		return 0
	}

	threshold, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing HOLD_STALE_THRESHOLD: %v", err)
	}
	return threshold
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := trackinghttp.NewServer(
		app.CreateStartProductionCommandHandler(),
		app.CreateMarkUnitReadyCommandHandler(),
		app.CreateSubmitInspectionCommandHandler(),
		app.CreateReleaseHoldCommandHandler(),
		app.CreateGetOrderProgressQueryHandler(),
		app.CreateGetUnitsByStationQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

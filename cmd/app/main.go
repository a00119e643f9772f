package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"negcom/cmd"
	httpin "negcom/internal/adapters/in/http"
	"negcom/internal/adapters/out/postgres/negotiationrepo"
	"negcom/internal/adapters/out/postgres/orderrepo"
	"negcom/internal/adapters/out/postgres/vehiclerepo"
	"negcom/internal/core/domain/services"
	"negcom/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustConnectDb(configs)
	mustMigrateDb(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := startJobs(&app, configs, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		OrderMaxAge: parseDuration(goDotEnvVariable("ORDER_MAX_AGE")),
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

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration %q: %v", s, err)
	}
	return d
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing. Duplicate database errors are
// ignored so restarts are safe.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(configs.DBName)))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "duplicate_database" {
			return
		}
		log.Fatalf("Error creating database %s: %v", configs.DBName, err)
	}
}

func mustConnectDb(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.RatingDTO{},
		&orderrepo.PaymentDTO{},
		&vehiclerepo.VehicleDTO{},
		&vehiclerepo.LocationDTO{},
		&vehiclerepo.ConditionDTO{},
		&negotiationrepo.NegotiationDTO{},
		&negotiationrepo.OfferDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateExpireStaleOrdersCommandHandler(),
		configs.OrderMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRefundOrderCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateCreateVehicleCommandHandler(),
		app.CreateEditVehicleCommandHandler(),
		app.CreateOpenNegotiationCommandHandler(),
		app.CreateMakeNegotiationOfferCommandHandler(),
		app.CreateAcceptNegotiationCommandHandler(),
		app.CreateRejectNegotiationCommandHandler(),
		app.CreateGetOrderDetailsQueryHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
		app.CreateGetVehicleDetailsQueryHandler(),
		app.CreateGetNegotiationDetailsQueryHandler(),
		services.NewAccessPolicy(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

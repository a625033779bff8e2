package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parcelhub/cmd"
	httpin "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:           goDotEnvVariable("REDIS_PASSWORD"),
		SMSGatewayURL:           goDotEnvVariable("SMS_GATEWAY_URL"),
		SMSGatewayAPIKey:        goDotEnvVariable("SMS_GATEWAY_API_KEY"),
		SMSGatewayTimeout:       goDotEnvVariable("SMS_GATEWAY_TIMEOUT"),
		NotificationDelay:       goDotEnvVariable("NOTIFICATION_DELAY"),
		NotificationMaxAttempts: goDotEnvVariable("NOTIFICATION_MAX_ATTEMPTS"),
		SignatureMaxBytes:       goDotEnvVariable("SIGNATURE_MAX_BYTES"),
		SignatureAllowedTypes:   goDotEnvVariable("SIGNATURE_ALLOWED_TYPES"),
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

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateResendNotificationCommandHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetOrderByURLQueryHandler(),
		app.CreateGetOrdersByRecipientQueryHandler(),
		app.Dispatcher(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

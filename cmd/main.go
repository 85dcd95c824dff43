package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"

	"resmap"
	"resmap/internal/api/handler/endpoints"
	"resmap/internal/api/handler/resource"
	"resmap/internal/api/models"
	"resmap/internal/events"
)

func main() {
	resmap.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	if resmap.GetConfig().Mode == "dev" {
		if err := resmap.DB.AutoMigrate(
			&models.User{},
			&models.Customer{},
			&models.Address{},
			&models.Product{},
			&models.Order{},
			&models.OrderItem{},
			&models.CardPayment{},
			&models.BankPayment{},
		); err != nil {
			resmap.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		resmap.Logger.Info().Msg("Database migrated successfully")
		gin.SetMode(gin.DebugMode)
	}

	registerMappings()

	var publisher *events.Publisher
	if resmap.GetConfig().NatsConfig.Enabled {
		var err error
		publisher, err = events.NewPublisher(resmap.GetConfig().NatsConfig.URL, resmap.Logger)
		if err != nil {
			resmap.Logger.Fatal().Err(err).Msg("Failed to connect to NATS")
		}
		defer publisher.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(resmap.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	initAPI(router, publisher)

	resmap.Logger.Debug().Msgf("Starting resource-mapper API on port %s", resmap.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		resmap.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}

// registerMappings declares the resource-to-entity pairs the mapper may
// traverse. Payment has two variants: the default maps to a card payment,
// the bank condition to a bank transfer.
func registerMappings() {
	resmap.Classes.Register(resource.Customer{}, models.Customer{})
	resmap.Classes.Register(resource.Address{}, models.Address{})
	resmap.Classes.Register(resource.Product{}, models.Product{})
	resmap.Classes.Register(resource.Order{}, models.Order{})
	resmap.Classes.Register(resource.OrderItem{}, models.OrderItem{})
	resmap.Classes.Register(resource.Payment{}, models.CardPayment{})
	resmap.Classes.RegisterConditional(resource.Payment{}, models.BankPayment{}, resource.ConditionBank)
}

func initAPI(router *graceful.Graceful, publisher *events.Publisher) {
	endpoints.AuthHandler(router)
	endpoints.CustomerHandler(router, publisher)
	endpoints.ProductHandler(router, publisher)
	endpoints.OrderHandler(router, publisher)
	endpoints.PaymentHandler(router, publisher)
}

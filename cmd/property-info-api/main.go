package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"property-info-api/internal/config"
	"property-info-api/internal/database"
	httpapi "property-info-api/internal/http"
	"property-info-api/internal/logger"
	"property-info-api/internal/repository"
	"property-info-api/internal/service"
	"property-info-api/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "property-info-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	materialsDB, err := database.NewPostgresDB(&cfg.MaterialsDB)
	if err != nil {
		log.Fatal("Failed to connect to materials database", zap.Error(err))
	}
	defer materialsDB.Close()

	xpandDB, err := database.NewPostgresDB(&cfg.XpandDB)
	if err != nil {
		log.Fatal("Failed to connect to xpand database", zap.Error(err))
	}
	defer xpandDB.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	kv := store.NewRedisKV(redisClient)

	materialsRepo := repository.NewPostgresMaterialsRepository(materialsDB)
	propertyRepo := repository.NewPostgresPropertyRepository(xpandDB)
	parkingRepo := repository.NewPostgresParkingRepository(xpandDB)

	materialsService := service.NewMaterialChoiceService(materialsRepo, log)
	propertyService := service.NewPropertyService(propertyRepo, log)
	parkingService := service.NewParkingService(parkingRepo, log)

	soapClient := service.NewXpandSoapClient(
		cfg.XpandSoap.URL,
		cfg.XpandSoap.Username,
		cfg.XpandSoap.Password,
		cfg.XpandSoap.CompanyCode,
		log,
	)
	xpandClient := service.NewXpandClient(cfg.ParkingService.URL, log)

	router := httpapi.NewRouter(log)
	router.RegisterRentalPropertyRoutes(
		httpapi.NewMaterialsHandler(materialsService, log),
		httpapi.NewPropertyHandler(propertyService, log),
	)
	router.RegisterParkingRoutes(
		httpapi.NewParkingHandler(parkingService, xpandClient, soapClient, log),
	)
	router.RegisterHealthRoutes(
		httpapi.NewHealthHandler(materialsDB, xpandDB, kv, log),
	)

	server := service.NewServer(cfg.HTTP.Addr, router, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Error("Failed to stop server gracefully", zap.Error(err))
	}
}

package di

import (
	"context"
	"fmt"
	"log"

	"hostelwatch/api"
	"hostelwatch/api/booking"
	"hostelwatch/config"
	"hostelwatch/dao/redis"
	"hostelwatch/db"
	"hostelwatch/server"
	"hostelwatch/server/handlers"
	services "hostelwatch/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient          db.RedisClient
	RedisRunDao          *redis.RedisRunDAO
	BookingAPI           booking.BookingAPI
	ScrapeService        *services.ScrapeService
	PriceRefresher       *services.PriceRefresherService
	PriceHandler         *handlers.PriceHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	PriceWatchHttpServer *server.PriceWatchHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.RedisPassword(),
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewCacheRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Run DAO
	redisRunDao := redis.NewRedisRunDAO(redisClient)

	// Initialize BookingAPI - mock serves canned fixtures outside prod
	var bookingApiClient booking.BookingAPI
	if env != "prod" {
		bookingApiClient = booking.NewBookingApiClientMock()
		log.Printf("Using mock booking api")
	} else {
		log.Printf("Using prod booking api")
		httpClient := api.NewHTTPClient(config.BOOKING_BASE_URL)
		httpClient.UserAgent = config.BOOKING_USER_AGENT

		bookingApiClient = booking.NewBookingApiClient(httpClient)
	}

	// Initialize service layer
	scrapeService := services.NewScrapeService(bookingApiClient)

	priceRefresher := services.NewPriceRefresherService(
		scrapeService, redisRunDao, config.PRICE_REFRESHER_RANGE_DAYS)

	// Initialize price handler
	priceHandler := handlers.NewPriceHandler(scrapeService, redisRunDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(priceHandler, muxRouter)

	// initialize http server
	priceWatchHttpServer := server.NewPriceWatchHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:          redisClient,
		RedisRunDao:          redisRunDao,
		BookingAPI:           bookingApiClient,
		ScrapeService:        scrapeService,
		PriceRefresher:       priceRefresher,
		PriceHandler:         priceHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		PriceWatchHttpServer: priceWatchHttpServer,
	}
}

package main

import (
	"fmt"
	"log"
	"time"

	"hostelwatch/config"
	"hostelwatch/di"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[MAIN] No .env file found, using defaults")
	}

	container := di.NewContainer(config.AppEnv())

	fmt.Println("refreshing prices!")
	if err := container.PriceRefresher.RefreshPrices(); err != nil {
		log.Printf("[MAIN] Initial price refresh failed: %v", err)
	}

	fmt.Println("starting periodic job!")
	container.PriceRefresher.StartPeriodicJob(config.PRICE_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.PriceWatchHttpServer.Start()
	fmt.Println("server stopped!")
}

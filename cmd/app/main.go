package main

import (
	"inn/config"
	"inn/di"
	"inn/shared/logger"
)

// @title Inn Reservation API
// @version 1.0
// @description Room catalog, booking ledger and availability API for a small hotel.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}

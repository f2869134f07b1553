package main

import (
	"os"
)

// @title Alsabqon Backend API
// @version 1.0
// @description Scripture search and practice ledger for the Alsabqon app.

// @host localhost:8001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

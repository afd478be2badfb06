package main

import (
	"log"

	"github.com/joho/godotenv"

	"artsdash/adapters/cache"
	"artsdash/adapters/file"
	"artsdash/adapters/httpcsv"
	"artsdash/app"
	"artsdash/internal/config"
	"artsdash/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loader := app.NewLoaderService(
		cache.NewMemoryCache(),
		file.NewReader(),
		httpcsv.NewReader(appConfig.Data.FetchTimeout),
	)
	dashboard := app.NewDashboardService(loader, appConfig.Data.Locator(), appConfig.Data.PreviewRows)

	webApp, err := ui.NewApp(ui.Config{Port: appConfig.Server.Port}, dashboard)
	if err != nil {
		log.Fatalf("Failed to initialize web application: %v", err)
	}

	log.Printf("Survey data source: %s", appConfig.Data.Locator())
	if err := webApp.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

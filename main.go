package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vit0-9/recon_api/pkg/recon"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARN: Error loading .env file, using environment variables from system if set.")
	}

	app, err := NewApp(recon.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Start(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

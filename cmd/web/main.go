// @title           PRizm Beauty API
// @version         1.0
// @description     Marketplace backend matching beauty and lifestyle influencers with brand campaigns.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import (
	"prizm_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	app.Run()
}

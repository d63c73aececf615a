package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/yohan-cho/item-simulator/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by /sign-in
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}

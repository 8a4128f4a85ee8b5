package main

import (
	"github.com/joho/godotenv"

	"github.com/stoik/intake/services/intake/internal/app"
)

func main() {
	// Best-effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()

	app.Execute()
}

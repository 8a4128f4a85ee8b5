package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/stoik/intake/services/mock-server/internal/mock"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	store := mock.NewStore()
	if n := seedCount(); n > 0 {
		store.SeedSamples(n)
		log.Printf("Seeded %d sample payloads", n)
	}

	r := mock.NewRouter(store)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting payload mock API server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func seedCount() int {
	v := os.Getenv("SEED_PAYLOADS")
	if v == "" {
		return 3
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("Ignoring invalid SEED_PAYLOADS=%q", v)
		return 0
	}
	return n
}

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment from a local .env file if present.
	_ = godotenv.Load(".env")

	log.SetFlags(0)
	log.SetPrefix("sinestats: ")

	cfg, args, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if err := run(cfg, args, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

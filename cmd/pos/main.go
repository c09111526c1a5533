package main

import (
	"context"
	"log"
	"os"

	"github.com/fjod/go_pos/internal/account"
	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/config"
	"github.com/fjod/go_pos/internal/console"
	"github.com/fjod/go_pos/internal/payment"
	"github.com/fjod/go_pos/internal/repository"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	repo, err := repository.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := catalog.NewSeededStore()
	ledger := cart.NewLedger(store)
	charger := payment.NewBreakerProcessor(payment.NewSimulator(nil))
	service := checkout.NewService(ledger, cfg.Rates, repo, charger)

	c := console.New(os.Stdin, os.Stdout, account.NewStore(), store, ledger, cfg.Rates, service, cfg.ReceiptDir)
	c.Run(context.Background())
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL LEDGER DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all supplier transactions")
	fmt.Println("  - Delete all vendor transactions")
	fmt.Println("  - Delete the stock record")
	fmt.Println("  - Reset all ID sequences")
	fmt.Println("  - Keep admin accounts")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	name := getenv("DB_NAME", "gas_db")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, pass, host, port, name)
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	statements := []string{
		"TRUNCATE supplier_transactions RESTART IDENTITY",
		"TRUNCATE vendor_transactions RESTART IDENTITY",
		"TRUNCATE stock RESTART IDENTITY",
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("%s failed: %v", stmt, err)
		}
		fmt.Printf("OK: %s\n", stmt)
	}

	fmt.Println("Database reset complete.")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

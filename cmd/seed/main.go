// Command seed resets the database and loads the demo admin account plus
// the sample property listings.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"primespace/internal/database"
	"primespace/internal/seed"

	"github.com/joho/godotenv"
)

var (
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	seedFn          = seed.Run
	exitFunc        = os.Exit
)

func run() error {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := seedFn(context.Background(), db); err != nil {
		return fmt.Errorf("seeding failed: %v", err)
	}

	log.Print("database seeded successfully")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

package main

import (
	"context"
	"log"
	"net/http"

	"oceanquery/api"
	"oceanquery/internal/config"
	"oceanquery/internal/container"
	"oceanquery/internal/errors"
	"oceanquery/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects to PostgreSQL and brings the schema up to date.
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	defer c.Close()

	// Persistence is optional: without DATABASE_URL the query log and
	// saved queries are disabled and everything else still works.
	if cfg.Database.URL != "" {
		db, err := initDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if err := c.InitWithDatabase(db); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	} else {
		log.Println("DATABASE_URL not set, running without query persistence")
	}

	httpApp := api.NewApp(
		c.ChatService, c.DashboardService, c.Source, c.Engine, c.Builder,
		cfg.Source.FetchTimeout)

	addr := ":" + cfg.Server.Port
	log.Printf("oceanquery listening on %s", addr)
	if err := http.ListenAndServe(addr, httpApp.Router()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"

	"github.com/gceelixir/symposium/internal/db"
	"github.com/gceelixir/symposium/internal/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbPath := os.Getenv("ELIXIR_DB")
	if dbPath == "" {
		dbPath = "elixir.db"
	}

	database := db.InitDB(dbPath)
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour
	sessionManager.Store = sqlite3store.New(database.DB)

	hub := notify.NewHub()

	router := newRouter(sessionManager, database, hub)

	addr := os.Getenv("ELIXIR_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

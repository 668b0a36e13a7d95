package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var databaseURL string
	flag.StringVar(&databaseURL, "database-url", postgres.ConnString(os.Getenv), "PostgreSQL connection string (defaults to DATABASE_URL or POSTGRES_*)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <up|down|status|version|redo|reset> [args]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	if databaseURL == "" {
		log.Fatal("a database url or POSTGRES_* settings are required")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	goose.SetBaseFS(postgres.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := goose.RunContext(ctx, command, db, postgres.MigrationsDir, flag.Args()[1:]...); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	log.Printf("Migration command %q executed successfully.", command)
}

// Command migrate applies, rolls back, or inspects database schema
// migrations. Schema changes in deployed environments go through this tool;
// the API server only applies migrations on boot in development.
//
// Usage:
//
//	go run ./scripts/migrate up
//	go run ./scripts/migrate down   (rolls back the most recent migration)
//	go run ./scripts/migrate status
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"

	"github.com/lingonote/lingonote/pkg/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing migration files")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	source := &migrate.FileMigrationSource{Dir: *dir}

	switch command {
	case "up":
		n, err := migrate.Exec(db, "postgres", source, migrate.Up)
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Printf("✅ Applied %d migrations", n)

	case "down":
		n, err := migrate.ExecMax(db, "postgres", source, migrate.Down, 1)
		if err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		log.Printf("✅ Rolled back %d migration", n)

	case "status":
		records, err := migrate.GetMigrationRecords(db, "postgres")
		if err != nil {
			log.Fatalf("Failed to read migration records: %v", err)
		}
		if len(records) == 0 {
			fmt.Println("No migrations applied yet")
			return
		}
		for _, r := range records {
			fmt.Printf("%s\tapplied %s\n", r.Id, r.AppliedAt.Format("2006-01-02 15:04:05"))
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected up, down or status)\n", command)
		os.Exit(2)
	}
}

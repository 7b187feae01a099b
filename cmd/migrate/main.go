package main

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/t1mga/FSP-BookingService/internal/config"
)

// Применяет миграции из каталога migrations/
// Использование: migrate [up|down]
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://migrations", cfg.Database.URL())
	if err != nil {
		fmt.Printf("Failed to initialize migrations: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		fmt.Printf("Unknown command %q, expected up or down\n", cmd)
		os.Exit(1)
	}

	if err != nil && err != migrate.ErrNoChange {
		fmt.Printf("Migration %s failed: %v\n", cmd, err)
		os.Exit(1)
	}

	fmt.Printf("Migration %s completed\n", cmd)
}

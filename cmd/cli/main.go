package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

func main() {
	addAdminCmd := flag.NewFlagSet("add-admin", flag.ExitOnError)
	username := addAdminCmd.String("username", "", "Username for the new admin")
	password := addAdminCmd.String("password", "", "Password for the new admin")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-admin' or 'seed' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-admin":
		addAdminCmd.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Println("username and password are required")
			addAdminCmd.PrintDefaults()
			os.Exit(1)
		}
		createAdmin(*username, *password)
	case "seed":
		seed()
	default:
		fmt.Println("expected 'add-admin' or 'seed' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./sauki.db"
	}

	backend, err := store.NewSQLiteBackend(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure table exists if running cli before server
	if err := backend.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return store.New(backend, models.ThemeLight)
}

func createAdmin(username, password string) {
	db := openStore()
	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	if _, err := db.AddAdmin(models.AdminUser{Username: username, Password: password}); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin '%s' created successfully.\n", username)
}

// seed writes the default catalog and admin for a fresh database.
// Idempotent: existing data is left alone.
func seed() {
	db := openStore()
	if err := db.Initialize(); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}
	fmt.Println("Store seeded with default catalog and admin.")
}

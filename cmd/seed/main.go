package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kepl/map2-server/config"
	"github.com/kepl/map2-server/pkg/helpers"
)

type seedUser struct {
	email      string
	password   string
	name       string
	role       string
	isBusker   bool
	isBusiness bool
}

// Development accounts covering every capability combination.
var seedUsers = []seedUser{
	{"admin@map2.local", "admin123", "Admin", "ADMIN", true, true},
	{"busker@map2.local", "busker123", "Street Busker", "USER", true, false},
	{"business@map2.local", "business123", "Shop Owner", "USER", false, true},
	{"user@map2.local", "user123", "Plain User", "USER", false, false},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, su := range seedUsers {
		hash, err := helpers.HashPassword(su.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, password_hash, name, role, is_busker, is_business)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO UPDATE
			SET name = EXCLUDED.name, role = EXCLUDED.role,
			    is_busker = EXCLUDED.is_busker, is_business = EXCLUDED.is_business
			RETURNING id
		`, su.email, hash, su.name, su.role, su.isBusker, su.isBusiness).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed %s: %v", su.email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s password=%s role=%s\n", id, su.email, su.password, su.role)
	}
}

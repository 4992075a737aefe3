package database

import (
	"log"

	"github.com/facureino/website/app/models"
	"github.com/facureino/website/app/repository"
	"github.com/facureino/website/internal/pkg/env"
)

// SeedAdminUser creates the single operator account when the users table
// is empty. Credentials come from ADMIN_EMAIL and ADMIN_PASSWORD; without
// them the admin area stays unreachable until they are set.
func SeedAdminUser() {
	users := repository.NewUserRepository(DB)

	count, err := users.Count()
	if err != nil {
		log.Printf("Failed to count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := env.GetEnv("ADMIN_EMAIL", "")
	password := env.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	user, err := models.CreateUser(env.GetEnv("ADMIN_NAME", "Facu Reino"), email, password)
	if err != nil {
		log.Printf("Failed to build admin user: %v", err)
		return
	}

	if err := users.Create(user); err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}

	log.Printf("Seeded admin user %s", email)
}

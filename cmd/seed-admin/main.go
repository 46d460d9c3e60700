package main

import (
	"log"
	"os"

	"go-stockdesk/internal/model"
	"go-stockdesk/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Creates the default admin, or resets its password when it already
// exists.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()
	defer database.Close(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "adminpass"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var user model.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		user = model.User{
			Name:     "Administrator",
			Email:    email,
			Password: string(hashedPassword),
			Role:     model.RoleAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user %s created", email)
		return
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}
	log.Printf("Password for %s has been reset", email)
}

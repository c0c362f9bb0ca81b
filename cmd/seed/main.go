package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/devifai-2026/feauage-backend-sub001/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	_ = godotenv.Load()
}

// main creates a superadmin account for the back-office
// Usage: go run ./cmd/seed
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FEAUAGE BACK-OFFICE - Superadmin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.Load()
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	email, password, name := getAdminCredentials()

	var existing models.User
	err := config.DB.Where("LOWER(email) = ?", strings.ToLower(email)).First(&existing).Error
	switch {
	case err == nil:
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed")

	superAdmin := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	if err := config.DB.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create superadmin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Superadmin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Printf("Role:  %s\n", superAdmin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Use the returned token for /api/v1/dashboard and /api/v1/targets")
	fmt.Println()
}

// getAdminCredentials prompts for the superadmin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Superadmin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	authService := services.GetAdminAuthService()
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}

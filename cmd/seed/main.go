package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/gabin-cxmp/sourcing/config"
	"github.com/gabin-cxmp/sourcing/models"
	"github.com/gabin-cxmp/sourcing/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a supplier dashboard account
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SOURCING DIRECTORY - Supplier Account Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connection
	config.InitDB()
	log.Println("✓ Connected to database")

	email, password, name := getSupplierCredentials()

	// Check if supplier already exists
	var existing models.Supplier
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ Supplier with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	passwordHash, err := services.HashSupplierPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	supplier := models.Supplier{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	if err := config.Gorm.Create(&supplier).Error; err != nil {
		log.Fatalf("Failed to create supplier: %v", err)
	}

	// Optionally send the dashboard invite email
	if os.Getenv("RESEND_API_KEY") != "" && askYesNo("Send dashboard invite email?") {
		resendClient := services.NewResendClient()
		err := resendClient.SendSupplierInviteEmail(services.SupplierInviteEmailData{
			SupplierName:  supplier.Name,
			SupplierEmail: supplier.Email,
			DashboardLink: config.GetFrontendURL(),
			TempPassword:  password,
		})
		if err != nil {
			log.Printf("⚠️ Failed to send invite email: %v", err)
		}
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Supplier Account Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", supplier.ID)
	fmt.Printf("Email: %s\n", supplier.Email)
	fmt.Printf("Name:  %s\n", supplier.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Fill in the listing at PATCH /api/v1/dashboard/supplier")
	fmt.Println("4. Add products at POST /api/v1/dashboard/products")
	fmt.Println()
}

// getSupplierCredentials prompts for the new account details
func getSupplierCredentials() (email, password, name string) {
	fmt.Println("Enter Supplier Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Company name
	for {
		fmt.Print("Company name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Company name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		if !services.ValidateSupplierPassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	return email, password, name
}

func askYesNo(question string) bool {
	var answer string
	fmt.Printf("%s (y/n): ", question)
	fmt.Scanln(&answer)
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

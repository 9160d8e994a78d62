package services

import (
	"golang.org/x/crypto/bcrypt"
)

// SupplierAuthService handles supplier credential operations
type SupplierAuthService struct{}

func NewSupplierAuthService() *SupplierAuthService {
	return &SupplierAuthService{}
}

// HashPassword hashes a password using bcrypt
func (s *SupplierAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *SupplierAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func (s *SupplierAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var supplierAuthService *SupplierAuthService

func GetSupplierAuthService() *SupplierAuthService {
	if supplierAuthService == nil {
		supplierAuthService = NewSupplierAuthService()
	}
	return supplierAuthService
}

// HashSupplierPassword hashes a password using the global service
func HashSupplierPassword(password string) (string, error) {
	return GetSupplierAuthService().HashPassword(password)
}

// VerifySupplierPassword verifies a password using the global service
func VerifySupplierPassword(hash, password string) bool {
	return GetSupplierAuthService().VerifyPassword(hash, password)
}

// ValidateSupplierPassword validates password requirements using the global service
func ValidateSupplierPassword(password string) bool {
	return GetSupplierAuthService().ValidatePassword(password)
}

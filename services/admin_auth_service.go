package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrNotAdmin           = errors.New("admin access required")
)

// AdminAuthService handles back-office authentication against the users table
type AdminAuthService struct {
	db  *gorm.DB
	Now func() time.Time
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(db *gorm.DB) *AdminAuthService {
	return &AdminAuthService{db: db, Now: time.Now}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// ════════════════════════════════════════════════════════════
// Login
// ════════════════════════════════════════════════════════════

// Login checks the credentials of an admin or superadmin and returns a signed token.
// Unknown emails and wrong passwords produce the same error.
func (s *AdminAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if !user.IsAdmin() {
		return nil, ErrNotAdmin
	}

	now := s.Now()
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	user.LastLoginAt = &now

	token, err := GetJWTService().GenerateAdminJWT(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  models.RecentUser{ID: user.ID, Name: user.Name, Email: user.Email, CreatedAt: user.CreatedAt},
		Role:  user.Role,
	}, nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminAuthService *AdminAuthService

// InitAdminAuthService sets the global admin auth service
func InitAdminAuthService(db *gorm.DB) *AdminAuthService {
	adminAuthService = NewAdminAuthService(db)
	return adminAuthService
}

// GetAdminAuthService returns the global admin auth service instance.
// Without InitAdminAuthService it can hash and verify passwords but not log in.
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService(nil)
	}
	return adminAuthService
}

// HashAdminPassword hashes a password using the global service
func HashAdminPassword(password string) (string, error) {
	return GetAdminAuthService().HashPassword(password)
}

// VerifyAdminPassword verifies a password using the global service
func VerifyAdminPassword(hash, password string) bool {
	return GetAdminAuthService().VerifyPassword(hash, password)
}

// ValidateAdminPassword validates password requirements using the global service
func ValidateAdminPassword(password string) bool {
	return GetAdminAuthService().ValidatePassword(password)
}

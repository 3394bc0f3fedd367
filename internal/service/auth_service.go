package service

import (
	"context"
	"fmt"
	"time"

	"github.com/straatfanaat/shop/internal/cache"
	"github.com/straatfanaat/shop/internal/config"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the back-office operator.
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		adminRepo: adminRepo,
	}
}

// HashPassword hashes with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a hash against a candidate password.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// JWTClaims are the admin token claims.
type JWTClaims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an admin token.
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)

	claims := JWTClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT validates and decodes an admin token.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidCredentials
}

// Login authenticates the operator. Attempts are throttled per client
// IP when Redis is available.
func (s *AuthService) Login(username, password, clientIP string) (*models.Admin, string, time.Time, error) {
	if s.loginThrottled(clientIP) {
		return nil, "", time.Time{}, ErrTooManyAttempts
	}

	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil {
		s.recordLoginFailure(clientIP)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.VerifyPassword(admin.PasswordHash, password); err != nil {
		s.recordLoginFailure(clientIP)
		logger.Warnw("admin_login_failed", "username", username, "client_ip", clientIP)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(admin.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	admin.LastLoginAt = &now

	logger.Infow("admin_login", "username", username, "client_ip", clientIP)
	return admin, token, expiresAt, nil
}

// ChangePassword rotates the operator password.
func (s *AuthService) ChangePassword(adminID uint, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}

	if err := s.VerifyPassword(admin.PasswordHash, oldPassword); err != nil {
		return ErrInvalidPassword
	}
	if len(newPassword) < 8 {
		return ErrInvalidPassword
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.adminRepo.UpdatePassword(adminID, hashedPassword)
}

func (s *AuthService) loginRateLimitKey(clientIP string) string {
	return fmt.Sprintf("login_attempts:%s", clientIP)
}

func (s *AuthService) loginThrottled(clientIP string) bool {
	limit := s.cfg.Security.LoginRateLimit
	if limit.MaxAttempts <= 0 || !cache.Enabled() {
		return false
	}
	var count int64
	hit, err := cache.GetJSON(context.Background(), s.loginRateLimitKey(clientIP), &count)
	if err != nil || !hit {
		return false
	}
	return count >= int64(limit.MaxAttempts)
}

func (s *AuthService) recordLoginFailure(clientIP string) {
	limit := s.cfg.Security.LoginRateLimit
	if limit.MaxAttempts <= 0 {
		return
	}
	window := time.Duration(limit.WindowSeconds) * time.Second
	if window <= 0 {
		window = 5 * time.Minute
	}
	if _, err := cache.IncrWithTTL(context.Background(), s.loginRateLimitKey(clientIP), window); err != nil {
		logger.Warnw("login_rate_limit_record_failed", "client_ip", clientIP, "error", err)
	}
}

package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"buspay_backend/internals/configs"
	dto "buspay_backend/internals/features/users/auth/dto"
	model "buspay_backend/internals/features/users/auth/model"
	helper "buspay_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= LOGIN ======================= */
// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := h.DB.Where("user_email = ?", req.UserEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja sama dengan password salah
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	pair, err := issueTokenPair(user.UserID)
	if err != nil {
		log.Println("[ERROR] Gagal issue token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", pair)
}

/* ======================= REFRESH ======================= */
// POST /auth/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	userID, err := parseRefreshToken(req.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	// Pastikan user masih ada & aktif sebelum menerbitkan pasangan baru
	var user model.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	pair, err := issueTokenPair(user.UserID)
	if err != nil {
		log.Println("[ERROR] Gagal issue token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Token diperbarui", pair)
}

/* ======================= HELPERS ======================= */

func issueTokenPair(userID uuid.UUID) (*dto.TokenPairResponse, error) {
	access, err := signToken(userID, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := signToken(userID, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func signToken(userID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("secret kosong")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseRefreshToken(tokenString string) (uuid.UUID, error) {
	secret := configs.JWTRefreshSecret
	if secret == "" {
		return uuid.Nil, errors.New("JWT_REFRESH_SECRET kosong")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}); err != nil {
		return uuid.Nil, err
	}

	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id claim tidak ada")
	}
	return uuid.Parse(raw)
}

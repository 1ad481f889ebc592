package handlers

import (
	"encoding/hex"
	"errors"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/raihankalla/myriad-backend/pkg/crypto"
)

// AuthHandler handles wallet-signature authentication
type AuthHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{userRepository: userRepo, jwtSecret: jwtSecret}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.GET("/nonce", h.GetNonce)
	g.POST("/login", h.Login)
}

// GetNonce returns the login nonce for a public address. The wallet signs the
// nonce to prove key ownership.
func (h *AuthHandler) GetNonce(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'id' is required")
	}

	user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"nonce": user.Nonce})
}

// LoginRequest defines the request body for wallet-signature login
type LoginRequest struct {
	PublicAddress string `json:"public_address" validate:"required"`
	Nonce         int64  `json:"nonce" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
	WalletType    string `json:"wallet_type" validate:"required,oneof=polkadot near"`
}

// Login verifies a signature over the user's current nonce and issues a JWT.
// The nonce rotates on every successful login so a captured signature cannot
// be replayed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByID(ctx, req.PublicAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unknown public address")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Nonce != user.Nonce {
		return echo.NewHTTPError(http.StatusUnauthorized, "Stale nonce")
	}

	signature, err := hex.DecodeString(strings.TrimPrefix(req.Signature, "0x"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid signature encoding")
	}

	message := crypto.NonceMessage(user.Nonce)
	var verified bool
	switch req.WalletType {
	case "near":
		verified = crypto.VerifyNearSignature(user.ID, message, signature)
	default:
		verified = crypto.VerifyPolkadotSignature(user.ID, message, signature)
	}
	if !verified {
		return echo.NewHTTPError(http.StatusUnauthorized, "Signature verification failed")
	}

	user.Nonce = NewNonce()
	if err := h.userRepository.UpdateUser(ctx, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

// NewNonce returns a fresh login nonce
func NewNonce() int64 {
	return rand.Int63n(1_000_000_000) + 1
}

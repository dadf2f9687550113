package http

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"goldmarket/internal/domain"
)

// Demo account credentials, published on purpose for trying out the app
const (
	demoEmail    = "demo@example.com"
	demoName     = "Demo User"
	demoPassword = "demo123"
	demoSubject  = "demo-123"
)

// demoSeedBalance gives the demo account more headroom than a fresh signup
var demoSeedBalance = decimal.RequireFromString("50000.00")

// PublicHandler serves the unauthenticated utility endpoints
type PublicHandler struct {
	userRepo domain.UserRepository
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(userRepo domain.UserRepository) *PublicHandler {
	return &PublicHandler{userRepo: userRepo}
}

// DemoLogin makes sure the demo account exists and returns its credentials
// GET /api/public/demo-login
func (h *PublicHandler) DemoLogin(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.GetByEmail(ctx, demoEmail)
	if errors.Is(err, domain.ErrNotFound) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to prepare demo user", err)
		}

		now := time.Now()
		hash := string(hashed)
		user = &domain.User{
			ID:                uuid.New(),
			Email:             demoEmail,
			Name:              demoName,
			PasswordHash:      &hash,
			Provider:          domain.ProviderLocal,
			ProviderSubjectID: demoSubject,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		if _, err := createUserWithWallet(ctx, h.userRepo, user, demoSeedBalance); err != nil {
			return InternalServerErrorResponse(c, "Failed to create demo user", err)
		}
		log.Printf("[OK] Created demo user %s", demoEmail)
	} else if err != nil {
		return InternalServerErrorResponse(c, "Failed to look up demo user", err)
	} else if user.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(demoPassword)) != nil {
		// The demo password is fixed; restore it if something changed it
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to prepare demo user", err)
		}
		if err := h.userRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
			return InternalServerErrorResponse(c, "Failed to reset demo password", err)
		}
	}

	return SuccessMessageResponse(c, "Demo user ready", map[string]string{
		"email":    demoEmail,
		"password": demoPassword,
	})
}

// Ping reports database connectivity and the user count
// GET /api/public/ping
func (h *PublicHandler) Ping(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	count, err := h.userRepo.Count(ctx)
	if err != nil {
		return InternalServerErrorResponse(c, "Database unreachable", err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"status":    "ok",
		"db":        "connected",
		"userCount": count,
	})
}

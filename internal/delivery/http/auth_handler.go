package http

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"goldmarket/internal/delivery/http/dto"
	"goldmarket/internal/domain"
	"goldmarket/internal/middleware"
)

// signupSeedBalance is the starting balance every new wallet is opened with
var signupSeedBalance = decimal.RequireFromString("10000.00")

// AuthHandler handles signup, login and profile requests
type AuthHandler struct {
	userRepo domain.UserRepository
	auth     *middleware.Auth
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo domain.UserRepository, auth *middleware.Auth) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		auth:     auth,
	}
}

// Signup handles local account creation
// POST /api/auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return BadRequestResponse(c, "Email, password and name are required")
	}
	if len(req.Password) < 6 {
		return BadRequestResponse(c, "Password must be at least 6 characters")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Check if user already exists
	if _, err := h.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return BadRequestResponse(c, "Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to hash password", err)
	}

	user, err := createUserWithWallet(ctx, h.userRepo, newLocalUser(req.Email, req.Name, string(hashedPassword)), signupSeedBalance)
	if err != nil {
		return InternalServerErrorResponse(c, "Signup failed", err)
	}

	return h.issueSession(c, user, CreatedResponse)
}

// Login handles local login
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" || req.Password == "" {
		return BadRequestResponse(c, "Email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return BadRequestResponse(c, "Invalid email or password")
	}

	// OAuth-only accounts have no password to check against
	if user.PasswordHash == nil {
		return BadRequestResponse(c, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return BadRequestResponse(c, "Invalid email or password")
	}

	return h.issueSession(c, user, SuccessResponse)
}

// Logout clears the session cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.auth.ExpiredCookie())
	return SuccessMessageResponse(c, "Logged out", nil)
}

// Me returns the authenticated user's profile
// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UnauthorizedResponse(c, "Not authenticated")
		}
		return InternalServerErrorResponse(c, "Failed to load profile", err)
	}

	return SuccessResponse(c, userOutput(user))
}

// UpdateProfile mutates name, phone and bio
// POST /api/auth/update
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UnauthorizedResponse(c, "Not authenticated")
		}
		return InternalServerErrorResponse(c, "Failed to load profile", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if err := h.userRepo.UpdateProfile(ctx, user); err != nil {
		return InternalServerErrorResponse(c, "Failed to update profile", err)
	}

	return SuccessResponse(c, userOutput(user))
}

// issueSession generates a JWT, sets the session cookie and responds with the
// token and user payload
func (h *AuthHandler) issueSession(c echo.Context, user *domain.User, respond func(echo.Context, interface{}) error) error {
	token, err := h.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to generate token", err)
	}
	c.SetCookie(h.auth.SessionCookie(token))

	return respond(c, dto.AuthResponse{
		Token: token,
		User:  userOutput(user),
	})
}

func newLocalUser(email, name, passwordHash string) *domain.User {
	now := time.Now()
	return &domain.User{
		ID:                uuid.New(),
		Email:             email,
		Name:              name,
		PasswordHash:      &passwordHash,
		Provider:          domain.ProviderLocal,
		ProviderSubjectID: email, // Local accounts use the email as subject id
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// createUserWithWallet opens the account and its seeded wallet atomically
func createUserWithWallet(ctx context.Context, userRepo domain.UserRepository, user *domain.User, seed decimal.Decimal) (*domain.User, error) {
	wallet := &domain.Wallet{
		ID:        uuid.New(),
		UserID:    user.ID,
		Currency:  domain.DefaultCurrency,
		Balance:   seed,
		CreatedAt: user.CreatedAt,
	}
	if err := userRepo.CreateWithWallet(ctx, user, wallet); err != nil {
		return nil, err
	}
	return user, nil
}

func userOutput(user *domain.User) *dto.UserOutput {
	out := &dto.UserOutput{
		ID:       user.ID.String(),
		Email:    user.Email,
		Name:     user.Name,
		Provider: user.Provider,
	}
	if user.Phone != nil {
		out.Phone = *user.Phone
	}
	if user.Bio != nil {
		out.Bio = *user.Bio
	}
	return out
}

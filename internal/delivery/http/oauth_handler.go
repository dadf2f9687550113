package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"goldmarket/internal/domain"
	"goldmarket/internal/middleware"
)

const (
	oauthStateCookie = "oauth_state"
	userInfoURL      = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthHandler handles the Google OAuth2 login flow. Accounts created here
// have no password; they authenticate through Google only.
type OAuthHandler struct {
	userRepo    domain.UserRepository
	auth        *middleware.Auth
	oauthConfig *oauth2.Config
	frontendURL string
}

// NewOAuthHandler creates a new OAuthHandler
func NewOAuthHandler(userRepo domain.UserRepository, auth *middleware.Auth, clientID, clientSecret, redirectURL, frontendURL string) *OAuthHandler {
	return &OAuthHandler{
		userRepo: userRepo,
		auth:     auth,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		frontendURL: frontendURL,
	}
}

// googleUserInfo is the subset of the userinfo payload we use
type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login redirects the browser to the Google consent screen
// GET /api/auth/google/login
func (h *OAuthHandler) Login(c echo.Context) error {
	state := uuid.NewString()

	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   300,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.oauthConfig.AuthCodeURL(state))
}

// Callback completes the OAuth2 handshake, upserts the user and starts a session
// GET /api/auth/google/callback
func (h *OAuthHandler) Callback(c echo.Context) error {
	stateCookie, err := c.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return UnauthorizedResponse(c, "Invalid OAuth state")
	}

	code := c.QueryParam("code")
	if code == "" {
		return BadRequestResponse(c, "Missing authorization code")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return UnauthorizedResponse(c, "Failed to exchange authorization code")
	}

	info, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch user info", err)
	}
	if info.Email == "" {
		return UnauthorizedResponse(c, "Google account has no email")
	}

	user, err := h.userRepo.GetByEmail(ctx, info.Email)
	if errors.Is(err, domain.ErrNotFound) {
		// First Google login creates the account with a seeded wallet
		user, err = createUserWithWallet(ctx, h.userRepo, newGoogleUser(info), signupSeedBalance)
		if err != nil {
			return InternalServerErrorResponse(c, "Failed to create user", err)
		}
		log.Printf("[OK] Created user %s via Google OAuth", user.Email)
	} else if err != nil {
		return InternalServerErrorResponse(c, "Failed to look up user", err)
	}

	sessionToken, err := h.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to generate token", err)
	}
	c.SetCookie(h.auth.SessionCookie(sessionToken))

	return c.Redirect(http.StatusFound, h.frontendURL)
}

func (h *OAuthHandler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to request user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request failed: status=%d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}

func newGoogleUser(info *googleUserInfo) *domain.User {
	now := time.Now()
	name := info.Name
	if name == "" {
		name = info.Email
	}
	return &domain.User{
		ID:                uuid.New(),
		Email:             info.Email,
		Name:              name,
		Provider:          domain.ProviderGoogle,
		ProviderSubjectID: info.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

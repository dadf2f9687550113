package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account, created on first signup or OAuth login
type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PasswordHash      *string   `json:"-"` // Never expose password hash in JSON; nil for OAuth-only users
	Provider          string    `json:"provider"`
	ProviderSubjectID string    `json:"-"`
	Phone             *string   `json:"phone,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AuthProvider constants
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

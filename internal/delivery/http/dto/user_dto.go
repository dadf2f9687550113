package dto

// UserOutput represents user details in API responses
type UserOutput struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

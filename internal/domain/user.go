package domain

import "time"

// User represents a registered user.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// PasswordHash is set only for users created through registration. The
	// login flow deliberately never checks it; the demo API fabricates tokens
	// from the email alone.
	PasswordHash string `json:"-"`
}

// TokenResponse is the response body for a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	ExpiresIn   int    `json:"expires_in"`
}

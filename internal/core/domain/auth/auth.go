package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the verified identity carried by a bearer token. Subject is
// the user ID; it is the only userId favorites operations ever trust.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the caller-facing shape of a verified token.
type Identity struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

// Token is a successful login response.
type Token struct {
	Token string `json:"token"`
}

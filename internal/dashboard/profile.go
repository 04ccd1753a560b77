package dashboard

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultDisplayName  = "User"
	defaultDisplayEmail = "user@example.com"
)

// Profile is display-only. It is read from the token without checking the
// signature and must never be used to decide access; the server re-verifies
// the token on every request.
type Profile struct {
	Username string
	Email    string
}

func DecodeIdentity(token string) Profile {
	profile := Profile{Username: defaultDisplayName, Email: defaultDisplayEmail}
	if token == "" {
		return profile
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return profile
	}
	if name, ok := claims["username"].(string); ok && name != "" {
		profile.Username = name
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		profile.Email = email
	}
	return profile
}

package auth

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims for an authenticated identity
type Claims struct {
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}

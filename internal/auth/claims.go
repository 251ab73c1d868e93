package auth

import "github.com/golang-jwt/jwt/v5"

// Claims carries the identity embedded in an API token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

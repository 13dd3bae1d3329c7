package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// The client never verifies token signatures or expiry: the trust boundary
// is the transport channel plus the backend, which rejects forged or stale
// tokens with a 401. Only the claimed payload is read here.

const placeholderName = "Usuário"

// UserFromToken decodes the token payload and builds the session identity
// from its claims. The sub claim carries the account email and is required;
// a missing name falls back to a placeholder, and the role is USER unless
// the claim is exactly ADMIN.
func UserFromToken(token string) (User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return User{}, fmt.Errorf("decode token: %w", err)
	}

	email := stringClaim(claims, "sub")
	if email == "" {
		return User{}, errors.New("token payload missing sub claim")
	}

	user := User{
		ID:    stringClaim(claims, "id"),
		Name:  stringClaim(claims, "name"),
		Email: email,
		Role:  RoleUser,
	}
	if user.Name == "" {
		user.Name = placeholderName
	}
	if stringClaim(claims, "role") == string(RoleAdmin) {
		user.Role = RoleAdmin
	}
	return user, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

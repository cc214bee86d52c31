package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fahim1105/seu-matrimony/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidIdentityToken is returned when an ID token cannot be decoded or
// carries no email.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// identityClaims mirrors the claims an identity-provider ID token carries.
type identityClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	UserID        string `json:"user_id"`
	Firebase      struct {
		SignInProvider string `json:"sign_in_provider"`
	} `json:"firebase"`
}

// ParseIdentity decodes an ID token into a [models.Identity] WITHOUT
// verifying its signature: the backend verifies every request, the client
// only needs to know who it is acting for.
//
// The uid is taken from "user_id" and falls back to "sub". The raw token is
// kept in Identity.Token for the bearer header.
//
// Example usage:
//
//	id, err := utils.ParseIdentity(rawIDToken)
//	if err != nil {
//	    // ask the user to sign in again
//	}
func ParseIdentity(idToken string) (models.Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return models.Identity{}, fmt.Errorf("%w: empty token", ErrInvalidIdentityToken)
	}

	var claims identityClaims
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, &claims); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidIdentityToken, err)
	}
	if claims.Email == "" {
		return models.Identity{}, fmt.Errorf("%w: no email claim", ErrInvalidIdentityToken)
	}

	uid := claims.UserID
	if uid == "" {
		uid = claims.Subject
	}

	return models.Identity{
		UID:           uid,
		Email:         models.NormalizeEmail(claims.Email),
		EmailVerified: claims.EmailVerified,
		Provider:      claims.Firebase.SignInProvider,
		Token:         idToken,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

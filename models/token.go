package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimsNamespace is the private claim key under which the server places the
// list-access claims of a user.
const ClaimsNamespace = "https://eatthatlist.app/jwt/claims"

// ListClaims is the payload stored under [ClaimsNamespace].
type ListClaims struct {
	// UserID duplicates the subject so that clients reading only the
	// namespaced claim can resolve the actor id.
	UserID string `json:"x-user-id"`
}

// TokenClaims is the full claim set of an access token.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Lists is nil until the server has provisioned the user.
	Lists *ListClaims `json:"https://eatthatlist.app/jwt/claims,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access (subject, expiry, list claims).
type Token struct {
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// HasListClaims reports whether the token carries the namespaced list claims
// for its own subject.
func (t *Token) HasListClaims() bool {
	return t.Lists != nil && t.Lists.UserID != "" && t.Lists.UserID == t.Subject
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

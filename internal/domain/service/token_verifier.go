// Package service defines interfaces for external collaborators the domain
// depends on (auth provider, AI assistant). Implementations live in infra.
package service

import "context"

// AuthClaims are the identity claims extracted from a verified ID token.
type AuthClaims struct {
	UID   string // The auth provider's unique user identifier.
	Email string
	Name  string
	Role  string // Optional custom claim; empty means customer.
}

// TokenVerifier verifies an ID token issued by the external auth provider and
// returns the identity claims it carries. Sign-in, sign-up and session
// management all happen client-side against the provider; the backend only
// ever sees bearer ID tokens.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*AuthClaims, error)
}

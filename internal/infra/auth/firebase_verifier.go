// Package auth contains the Firebase-backed implementation of the token
// verifier. Sign-in, sign-up and Google sign-in all happen client-side against
// Firebase Auth; the backend only verifies the resulting ID tokens.
package auth

import (
	"context"

	"cargofly/internal/domain/service"
	"cargofly/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a token verifier backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsPath string) (service.TokenVerifier, error) {
	opts := []option.ClientOption{}
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken validates the bearer ID token and extracts identity claims.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.AuthClaims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	claims := &service.AuthClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.Name = name
	}
	// Staff and admin accounts carry a custom "role" claim set by back office
	// tooling; everyone else defaults to customer downstream.
	if role, ok := token.Claims["role"].(string); ok {
		claims.Role = role
	}

	return claims, nil
}

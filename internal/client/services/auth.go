// Package services contains application services for the ArtLog client.
// This file defines the authentication service: the login boundary call and
// the local housekeeping done on logout.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate the credentials locally, then obtain the display identity.
//   - Logout: wipe locally recorded data (the mutation journal).
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, profilePicture string) (models.Identity, error)
	Logout(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote AuthClient and,
// optionally, the local journal.
type authService struct {
	client  client.AuthClient
	journal *JournalService
}

// NewAuthService constructs an AuthService. journal may be nil when no local
// journal is kept.
func NewAuthService(client client.AuthClient, journal *JournalService) AuthService {
	return &authService{client: client, journal: journal}
}

// Login validates the request locally, so an empty username makes no call.
// Failures from the service keep their StatusError for the caller to surface
// its detail.
func (a *authService) Login(ctx context.Context, username, profilePicture string) (models.Identity, error) {
	req := models.LoginRequest{Username: username, ProfilePicture: profilePicture}
	if err := models.Validate(req); err != nil {
		return models.Identity{}, err
	}

	id, err := a.client.Login(ctx, req)
	if err != nil {
		return models.Identity{}, fmt.Errorf("login error: %w", err)
	}
	return id, nil
}

// Logout clears the local journal. The service keeps no session to end.
func (a *authService) Logout(ctx context.Context) error {
	if a.journal == nil {
		return nil
	}
	return a.journal.Clear(ctx)
}

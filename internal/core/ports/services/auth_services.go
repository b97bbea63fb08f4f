package services

import (
	"context"

	"github.com/bethehero/adopt_backend/internal/core/domain"
	"github.com/bethehero/adopt_backend/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthSvcFacade defines registration and credential verification.
type AuthSvcFacade interface {
	// Register creates a user with one of the publicly registrable roles.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, string, error)

	// Login verifies email/password credentials and issues a token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)

	// ExchangeGoogleCode signs a guardian in via a Google OAuth
	// authorization code, creating the account on first login.
	ExchangeGoogleCode(ctx context.Context, req dto.GoogleExchangeRequest) (*domain.User, string, error)
}

// GoogleOAuthSvcFacade wraps the outbound calls of the Google code flow.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)

	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateIDToken verifies the id_token returned alongside the access
	// token and returns its payload.
	ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}

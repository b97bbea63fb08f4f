package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/bethehero/adopt_backend/internal/apperrors"
	"github.com/bethehero/adopt_backend/internal/core/domain"
	portsrepo "github.com/bethehero/adopt_backend/internal/core/ports/repositories"
	portssvc "github.com/bethehero/adopt_backend/internal/core/ports/services"
	"github.com/bethehero/adopt_backend/internal/dto"
	"github.com/bethehero/adopt_backend/internal/utils"
	"github.com/bethehero/adopt_backend/pkg/config"
)

// AuthService handles registration, credential checks and token issuance.
type AuthService struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	auditRepo portsrepo.AuditRepositoryFacade
	oauthSvc  portssvc.GoogleOAuthSvcFacade
	cfg       *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(ur portsrepo.UserRepositoryFacade, ar portsrepo.AuditRepositoryFacade, oauthSvc portssvc.GoogleOAuthSvcFacade, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  ur,
		auditRepo: ar,
		oauthSvc:  oauthSvc,
		cfg:       cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Register creates a user account. Only GUARDIAN and PARTNER_MEMBER may be
// chosen at signup; ADMIN and SUPER_ADMIN accounts are provisioned out of
// band.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, string, error) {
	if !req.Role.IsPublicRegistrable() {
		return nil, "", apperrors.ErrForbiddenRole
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailInUse) {
			return nil, "", err
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.auditRepo.CreateLog(ctx, domain.NewAuditLog(user.UserID, domain.AuditCreate, domain.AuditEntityUser, user.UserID, map[string]any{
		"role": string(user.Role),
	})); err != nil {
		s.LogError(ctx, err, "Failed to write registration audit entry", slog.String("user_id", user.UserID))
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token after registration", slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, token, nil
}

// Login verifies credentials. Unknown emails, deactivated accounts and bad
// passwords all collapse into the same invalid-credentials answer.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to fetch user for login")
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if !user.IsActive {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// ExchangeGoogleCode signs a guardian in through the Google code flow.
// First-time sign-ins create a GUARDIAN account with a verified email and a
// random password hash nobody can log in with directly.
func (s *AuthService) ExchangeGoogleCode(ctx context.Context, req dto.GoogleExchangeRequest) (*domain.User, string, error) {
	googleToken, err := s.oauthSvc.ExchangeCodeForToken(ctx, req.Code, req.RedirectURI)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange Google authorization code")
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// Google returns an id_token alongside the access token; verify it so a
	// forged token response cannot impersonate a user.
	if rawIDToken, ok := googleToken.Extra("id_token").(string); ok && rawIDToken != "" {
		if _, err := s.oauthSvc.ValidateIDToken(ctx, rawIDToken); err != nil {
			s.LogError(ctx, err, "Google id_token validation failed")
			return nil, "", apperrors.ErrInvalidCredentials
		}
	}

	info, err := s.oauthSvc.GetUserInfo(ctx, googleToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch Google user info")
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if info.Email == "" || !info.VerifiedEmail {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by Google email")
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		randomSecret, randErr := utils.GenerateSecureRandomString(32)
		if randErr != nil {
			return nil, "", fmt.Errorf("failed to generate password placeholder: %w", randErr)
		}
		hash, hashErr := utils.HashPassword(randomSecret)
		if hashErr != nil {
			return nil, "", fmt.Errorf("failed to hash password placeholder: %w", hashErr)
		}

		now := time.Now()
		created := domain.User{
			UserID:        uuid.NewString(),
			FullName:      info.Name,
			Email:         info.Email,
			PasswordHash:  hash,
			Role:          domain.RoleGuardian,
			EmailVerified: true,
			IsActive:      true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "google-oauth",
				LastUpdatedAt: now,
				LastUpdatedBy: "google-oauth",
			},
		}
		if saveErr := s.userRepo.SaveUser(ctx, created); saveErr != nil {
			s.LogError(ctx, saveErr, "Failed to create user from Google sign-in")
			return nil, "", fmt.Errorf("failed to create user: %w", saveErr)
		}
		user = &created
		s.LogInfo(ctx, "Guardian account created via Google", slog.String("user_id", user.UserID))
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue token", slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// googleOAuthService implements the outbound half of the Google code flow.
type googleOAuthService struct {
	clientID     string
	clientSecret string
}

// NewGoogleOAuthService creates the Google OAuth adapter.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
	}
}

func (g *googleOAuthService) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.clientID,
		ClientSecret: g.clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (g *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	token, err := g.config(redirectURI).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to get user information from Google.
func (g *googleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := g.config("").Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &userInfo, nil
}

// ValidateIDToken verifies an id_token against the configured client ID.
func (g *googleOAuthService) ValidateIDToken(ctx context.Context, rawIDToken string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("id token validation failed: %w", err)
	}
	return payload, nil
}

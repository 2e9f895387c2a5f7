package auth

import "context"

// AuthService defines authentication operations
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates a refresh token into a new token pair
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the presented refresh token
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogleURL returns the OAuth2 redirect URL for Google login
	LoginWithGoogleURL(ctx context.Context, userAgent string) (string, error)

	// OAuthCallbackGoogle exchanges the authorization code and issues tokens
	// for the matching user account
	OAuthCallbackGoogle(ctx context.Context, code string, sessionReq SessionTrackingRequest) (TokenResponse, error)
}

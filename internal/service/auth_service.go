package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strconv"
	"time"

	"ripple/internal/auth"
	"ripple/internal/models"
	"ripple/internal/observability"
)

const resetTokenTTL = time.Hour

// resetRequestMessage is returned whether or not the email exists, so the
// endpoint cannot be used to enumerate accounts. The two paths must stay
// byte-identical.
const resetRequestMessage = "If an account exists with this email, a reset link will be sent."

// AuthService manages sessions: token issuance, revocation and password
// resets.
type AuthService struct {
	users       *UserService
	jwtSecret   string
	tokenExpiry time.Duration
	revoked     auth.TokenStore
	resetTokens auth.TokenStore
	logger      *slog.Logger
}

// LoginResult is the login response payload.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// NewAuthService returns a new AuthService. The two stores hold revoked
// token IDs and outstanding password-reset tokens respectively.
func NewAuthService(users *UserService, jwtSecret string, tokenExpiry time.Duration, revoked, resetTokens auth.TokenStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:       users,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		revoked:     revoked,
		resetTokens: resetTokens,
		logger:      logger,
	}
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, in CreateUserInput) (*models.User, error) {
	return s.users.Create(ctx, in)
}

// Login checks credentials and issues a token carrying {sub, email}. Bad
// credentials are Unauthorized without detail.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.AuthFailures.WithLabelValues("bad_credentials").Inc()
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &LoginResult{AccessToken: token, User: user}, nil
}

// Logout revokes the session's token until its natural expiry, then sweeps
// expired entries out of the revocation store.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := s.revoked.Put(ctx, claims.ID, "1", ttl); err != nil {
			return models.NewInternalError(err)
		}
		observability.TokensRevoked.Inc()
	}

	// Opportunistic cleanup keeps the in-memory store bounded.
	if err := s.revoked.Sweep(ctx); err != nil {
		s.logger.WarnContext(ctx, "revocation sweep failed", slog.String("error", err.Error()))
	}
	return nil
}

// IsRevoked reports whether the token ID was logged out.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, found, err := s.revoked.Get(ctx, jti)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return found, nil
}

// Refresh issues a fresh token for the authenticated user. The previous
// token stays valid until it expires.
func (s *AuthService) Refresh(ctx context.Context, userID uint) (string, error) {
	user, err := s.users.FindOne(ctx, userID)
	if err != nil {
		return "", err
	}
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return token, nil
}

// RequestPasswordReset stores a single-use reset token for the account, if
// one exists. The response message never reveals whether it does.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindOneByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return resetRequestMessage, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", models.NewInternalError(err)
	}
	token := hex.EncodeToString(buf)

	if err := s.resetTokens.Put(ctx, token, strconv.FormatUint(uint64(user.ID), 10), resetTokenTTL); err != nil {
		return "", models.NewInternalError(err)
	}

	// TODO: deliver the token by email once an outbound mailer exists.
	s.logger.InfoContext(ctx, "password reset token issued",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("reset_token", token),
	)
	return resetRequestMessage, nil
}

// ResetPassword consumes a reset token and sets the new password. Tokens
// are single-use; a second attempt with the same token is rejected.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	value, found, err := s.resetTokens.Get(ctx, token)
	if err != nil {
		return models.NewInternalError(err)
	}
	if !found {
		return models.NewBadRequestError("Invalid or expired token")
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return models.NewInternalError(err)
	}

	if _, err := s.users.Update(ctx, uint(userID), UpdateUserInput{Password: newPassword}); err != nil {
		return err
	}

	if err := s.resetTokens.Delete(ctx, token); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

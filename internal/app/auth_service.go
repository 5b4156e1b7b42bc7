package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/analytics"
	"jobport/internal/domain/auth"
	"jobport/internal/domain/user"
	"jobport/internal/mail"
	"jobport/internal/security"
)

type AuthService struct {
	users       user.Repository
	resetTokens auth.ResetTokenRepository
	analytics   analytics.Repository
	jwtProvider *security.JWTProvider
	mailer      mail.Mailer
	logger      Logger
	accessTTL   time.Duration
	resetTTL    time.Duration
}

func NewAuthService(users user.Repository, resetTokens auth.ResetTokenRepository, analytics analytics.Repository, jwtProvider *security.JWTProvider, mailer mail.Mailer, logger Logger, accessTTL, resetTTL time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		resetTokens: resetTokens,
		analytics:   analytics,
		jwtProvider: jwtProvider,
		mailer:      mailer,
		logger:      logger,
		accessTTL:   accessTTL,
		resetTTL:    resetTTL,
	}
}

type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "email is required"
	}
	if input.Password == "" {
		fields["password"] = "password is required"
	}
	if input.Password != input.ConfirmPassword {
		fields["confirm_password"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	role, err := user.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "email already exists", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	account := user.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	created, err := s.users.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.registered", UserID: &created.ID, Payload: analyticsPayload(ctx, map[string]string{"role": string(created.Role)})})
	s.logInfo(fmt.Sprintf("user registered user_id=%s", created.ID))
	return created, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

func (s *AuthService) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "email is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if strings.TrimSpace(role) == "" {
		fields["role"] = "role is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("email, password, and role are required", fields)
	}
	requestedRole, err := user.ParseRole(role)
	if err != nil {
		return nil, err
	}
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
		}
		return nil, err
	}
	if !security.ComparePassword(account.PasswordHash, password) {
		_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.login_failed", Payload: analyticsPayload(ctx, map[string]string{"email": email})})
		return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
	}
	if account.Role != requestedRole {
		return nil, common.NewError(common.CodeUnauthorized, "role mismatch", nil)
	}
	token, expiresAt, err := s.jwtProvider.Generate(account.ID, string(account.Role), s.accessTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate access token", err)
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.logged_in", UserID: &account.ID, Payload: analyticsPayload(ctx, map[string]string{"role": string(account.Role)})})
	s.logInfo(fmt.Sprintf("user logged in user_id=%s", account.ID))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: account}, nil
}

// ForgotPassword issues a single-use reset token and mails it. A delivery
// failure is surfaced to the caller, but the stored token is kept so the
// user can retry without invalidating it.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return common.NewValidationError("invalid request", map[string]string{"email": "email is required"})
	}
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return common.NewError(common.CodeNotFound, "user with this email does not exist", nil)
		}
		return err
	}
	token, err := generateResetToken()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to generate reset token", err)
	}
	now := time.Now().UTC()
	record := auth.PasswordResetToken{
		ID:        common.NewUUID(),
		UserID:    account.ID,
		Token:     token,
		ExpiresAt: now.Add(s.resetTTL),
		CreatedAt: now,
	}
	if err := s.resetTokens.Store(ctx, record); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.reset_requested", UserID: &account.ID, Payload: analyticsPayload(ctx, nil)})
	msg := mail.Message{
		To:      account.Email,
		Subject: "Password Reset Token",
		Body:    "Use this token to reset your password: " + token,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logError(fmt.Sprintf("reset token delivery failed user_id=%s", account.ID))
		return common.NewError(common.CodeDeliveryFailed, "failed to deliver reset token", err)
	}
	s.logInfo(fmt.Sprintf("reset token issued user_id=%s", account.ID))
	return nil
}

// ResetPassword redeems a token. Consume is a compare-and-delete, so a
// concurrent redeemer of the same token loses with not-found.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	fields := map[string]string{}
	if strings.TrimSpace(token) == "" {
		fields["token"] = "token is required"
	}
	if newPassword == "" {
		fields["new_password"] = "new_password is required"
	}
	if newPassword != confirmPassword {
		fields["confirm_password"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid request", fields)
	}
	stored, err := s.resetTokens.Consume(ctx, strings.TrimSpace(token))
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return common.NewError(common.CodeNotFound, "invalid token", nil)
		}
		return err
	}
	if stored.ExpiresAt.Before(time.Now().UTC()) {
		// Consume already removed the row, so an expired token cannot be
		// presented again.
		return common.NewError(common.CodeExpired, "token expired", nil)
	}
	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, stored.UserID, hash); err != nil {
		return err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "auth.password_reset", UserID: &stored.UserID, Payload: analyticsPayload(ctx, nil)})
	s.logInfo(fmt.Sprintf("password reset user_id=%s", stored.UserID))
	return nil
}

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}

func (s *AuthService) logError(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg)
}

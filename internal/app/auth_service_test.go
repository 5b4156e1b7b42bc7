package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"jobport/internal/common"
	"jobport/internal/domain/analytics"
	"jobport/internal/domain/auth"
	"jobport/internal/domain/user"
	"jobport/internal/mail"
	"jobport/internal/security"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	byID    map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[common.UUID]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	stored := account
	r.byEmail[account.Email] = &stored
	r.byID[account.ID] = &stored
	copy := stored
	return &copy, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copy := *account
	return &copy, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byEmail[email]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copy := *account
	return &copy, nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id common.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	account.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) SetProfileComplete(ctx context.Context, id common.UUID, complete bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	account.ProfileComplete = complete
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID), nil
}

type fakeResetTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]auth.PasswordResetToken
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{tokens: make(map[string]auth.PasswordResetToken)}
}

func (r *fakeResetTokenRepo) Store(ctx context.Context, token auth.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeResetTokenRepo) Consume(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.tokens[token]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "reset token not found", nil)
	}
	delete(r.tokens, token)
	copy := stored
	return &copy, nil
}

func (r *fakeResetTokenRepo) DeleteExpired(ctx context.Context, before time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range r.tokens {
		if value.ExpiresAt.Before(before) {
			delete(r.tokens, key)
		}
	}
	return nil
}

type noopAnalyticsRepo struct{}

func (noopAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	return nil
}

type fakeMailer struct {
	mu       sync.Mutex
	sendErr  error
	messages []mail.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return m.sendErr
}

func newAuthService(users user.Repository, tokens auth.ResetTokenRepository, mailer mail.Mailer) *AuthService {
	jwtProvider := security.NewJWTProvider("secret")
	return NewAuthService(users, tokens, noopAnalyticsRepo{}, jwtProvider, mailer, nil, time.Hour, time.Hour)
}

func signupSeeker(t *testing.T, service *AuthService, email string) *user.User {
	t.Helper()
	account, err := service.Signup(context.Background(), SignupInput{
		Name:            "Test User",
		Email:           email,
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
		Role:            "job_seeker",
	})
	if err != nil {
		t.Fatalf("expected signup to succeed, got %v", err)
	}
	return account
}

func TestAuthServiceSignup_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newAuthService(userRepo, newFakeResetTokenRepo(), &fakeMailer{})

	signupSeeker(t, service, "dup@example.com")
	_, err := service.Signup(context.Background(), SignupInput{
		Name:            "Second",
		Email:           "dup@example.com",
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
		Role:            "recruiter",
	})
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAuthServiceSignup_PasswordMismatch(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeResetTokenRepo(), &fakeMailer{})

	_, err := service.Signup(context.Background(), SignupInput{
		Name:            "Test",
		Email:           "mismatch@example.com",
		Password:        "pass1234",
		ConfirmPassword: "different",
		Role:            "job_seeker",
	})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthServiceSignup_UnknownRole(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeResetTokenRepo(), &fakeMailer{})

	_, err := service.Signup(context.Background(), SignupInput{
		Name:            "Test",
		Email:           "role@example.com",
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
		Role:            "superuser",
	})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
}

func TestAuthServiceLogin_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newAuthService(userRepo, newFakeResetTokenRepo(), &fakeMailer{})

	account := signupSeeker(t, service, "login@example.com")
	result, err := service.Login(context.Background(), "login@example.com", "pass1234", "job_seeker")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected access token")
	}
	if result.User.ID != account.ID {
		t.Fatalf("expected user %s, got %s", account.ID, result.User.ID)
	}
}

func TestAuthServiceLogin_RoleMismatch(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeResetTokenRepo(), &fakeMailer{})

	signupSeeker(t, service, "seeker@example.com")
	_, err := service.Login(context.Background(), "seeker@example.com", "pass1234", "recruiter")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for role mismatch, got %v", err)
	}
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeResetTokenRepo(), &fakeMailer{})

	signupSeeker(t, service, "wrongpass@example.com")
	_, err := service.Login(context.Background(), "wrongpass@example.com", "nope", "job_seeker")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthServiceForgotPassword_IssuesAndMailsToken(t *testing.T) {
	tokenRepo := newFakeResetTokenRepo()
	mailer := &fakeMailer{}
	service := newAuthService(newFakeUserRepo(), tokenRepo, mailer)

	signupSeeker(t, service, "forgot@example.com")
	if err := service.ForgotPassword(context.Background(), "forgot@example.com"); err != nil {
		t.Fatalf("expected forgot password to succeed, got %v", err)
	}
	if len(tokenRepo.tokens) != 1 {
		t.Fatalf("expected one stored token, got %d", len(tokenRepo.tokens))
	}
	if len(mailer.messages) != 1 {
		t.Fatalf("expected one mail, got %d", len(mailer.messages))
	}
	if mailer.messages[0].To != "forgot@example.com" {
		t.Fatalf("expected mail to user, got %s", mailer.messages[0].To)
	}
}

func TestAuthServiceForgotPassword_UnknownEmail(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeResetTokenRepo(), &fakeMailer{})

	err := service.ForgotPassword(context.Background(), "missing@example.com")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthServiceForgotPassword_DeliveryFailureKeepsToken(t *testing.T) {
	tokenRepo := newFakeResetTokenRepo()
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	service := newAuthService(newFakeUserRepo(), tokenRepo, mailer)

	signupSeeker(t, service, "broken@example.com")
	err := service.ForgotPassword(context.Background(), "broken@example.com")
	if !common.Is(err, common.CodeDeliveryFailed) {
		t.Fatalf("expected delivery failed, got %v", err)
	}
	if len(tokenRepo.tokens) != 1 {
		t.Fatalf("expected token to survive delivery failure, got %d stored", len(tokenRepo.tokens))
	}
}

func issuedToken(t *testing.T, tokenRepo *fakeResetTokenRepo) string {
	t.Helper()
	tokenRepo.mu.Lock()
	defer tokenRepo.mu.Unlock()
	for token := range tokenRepo.tokens {
		return token
	}
	t.Fatal("expected a stored token")
	return ""
}

func TestAuthServiceResetPassword_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeResetTokenRepo()
	service := newAuthService(userRepo, tokenRepo, &fakeMailer{})

	signupSeeker(t, service, "reset@example.com")
	if err := service.ForgotPassword(context.Background(), "reset@example.com"); err != nil {
		t.Fatalf("expected forgot password to succeed, got %v", err)
	}
	token := issuedToken(t, tokenRepo)

	if err := service.ResetPassword(context.Background(), token, "newpass1", "newpass1"); err != nil {
		t.Fatalf("expected reset to succeed, got %v", err)
	}
	if _, err := service.Login(context.Background(), "reset@example.com", "newpass1", "job_seeker"); err != nil {
		t.Fatalf("expected login with new password, got %v", err)
	}
	if _, err := service.Login(context.Background(), "reset@example.com", "pass1234", "job_seeker"); !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}
}

func TestAuthServiceResetPassword_SingleUse(t *testing.T) {
	tokenRepo := newFakeResetTokenRepo()
	service := newAuthService(newFakeUserRepo(), tokenRepo, &fakeMailer{})

	signupSeeker(t, service, "once@example.com")
	if err := service.ForgotPassword(context.Background(), "once@example.com"); err != nil {
		t.Fatalf("expected forgot password to succeed, got %v", err)
	}
	token := issuedToken(t, tokenRepo)

	if err := service.ResetPassword(context.Background(), token, "newpass1", "newpass1"); err != nil {
		t.Fatalf("expected first redemption to succeed, got %v", err)
	}
	err := service.ResetPassword(context.Background(), token, "another1", "another1")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected second redemption to fail with not found, got %v", err)
	}
}

func TestAuthServiceResetPassword_ExpiredTokenRemoved(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeResetTokenRepo()
	service := newAuthService(userRepo, tokenRepo, &fakeMailer{})

	account := signupSeeker(t, service, "expired@example.com")
	token := "expiredtoken"
	tokenRepo.tokens[token] = auth.PasswordResetToken{
		ID:        common.NewUUID(),
		UserID:    account.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}

	err := service.ResetPassword(context.Background(), token, "newpass1", "newpass1")
	if !common.Is(err, common.CodeExpired) {
		t.Fatalf("expected expired error, got %v", err)
	}
	if _, ok := tokenRepo.tokens[token]; ok {
		t.Fatal("expected expired token to be removed")
	}
}

func TestAuthServiceResetPassword_UnknownToken(t *testing.T) {
	service := newAuthService(newFakeUserRepo(), newFakeResetTokenRepo(), &fakeMailer{})

	err := service.ResetPassword(context.Background(), "nosuchtoken", "newpass1", "newpass1")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

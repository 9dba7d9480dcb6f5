package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"futsal-booking/backend/config"
	"futsal-booking/backend/internal/dto"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/pkg/jwt"
)

// ── 测试辅助 ──

type mockTokenBlacklist struct {
	revoked map[string]time.Duration
}

func (m *mockTokenBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	m.revoked[jti] = ttl
	return nil
}

func (m *mockTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, ok := m.revoked[jti]
	return ok, nil
}

func setupTestAuthService() (AuthService, *mockRepos, *mockTokenBlacklist, *jwt.Manager) {
	repo, mocks := newMockRepos()
	cfg := &config.Config{Auth: config.AuthConfig{
		JWTSecret:       "futsal-test-secret-0001",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: time.Hour,
	}}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	tokens := &mockTokenBlacklist{revoked: make(map[string]time.Duration)}
	svc := NewAuthService(cfg, repo, jwtMgr, tokens, zap.NewNop())
	return svc, mocks, tokens, jwtMgr
}

func registerCustomer(t *testing.T, svc AuthService) *dto.UserResponse {
	t.Helper()
	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Sita",
		Email:    "Sita@Example.com",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	return user
}

// ── Register 测试 ──

func TestAuthService_Register_Customer(t *testing.T) {
	svc, mocks, _, _ := setupTestAuthService()

	user := registerCustomer(t, svc)
	if user.RoleTitle != model.RoleCustomer {
		t.Errorf("期望角色 Customer，实际=%s", user.RoleTitle)
	}
	if user.IsVerified {
		t.Error("新用户应为未验证")
	}
	if user.Email != "sita@example.com" {
		t.Errorf("邮箱应统一小写，实际=%s", user.Email)
	}
	if stored := mocks.users.users[user.ID]; stored.PasswordHash == "secret-pass" {
		t.Error("密码不应明文存储")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	registerCustomer(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Other", Email: "sita@example.com", Password: "another-pass",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际=%v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _, jwtMgr := setupTestAuthService()
	registerCustomer(t, svc)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "sita@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	claims, err := jwtMgr.ParseToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("AccessToken 应可解析: %v", err)
	}
	if claims.Role != model.RoleCustomer || claims.TokenType != jwt.TokenTypeAccess {
		t.Errorf("Token 声明不正确: %+v", claims)
	}
	if tokens.ExpiresIn != 1800 {
		t.Errorf("期望 expires_in=1800，实际=%d", tokens.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	registerCustomer(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "sita@example.com", Password: "wrong-pass"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

// ── Refresh / Logout 测试 ──

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	registerCustomer(t, svc)
	ctx := context.Background()

	first, err := svc.Login(ctx, &dto.LoginRequest{Email: "sita@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	if _, err := svc.Refresh(ctx, first.RefreshToken); err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if _, err := svc.Refresh(ctx, first.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("旧 Refresh Token 重复使用应失败，实际=%v", err)
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	registerCustomer(t, svc)

	tokens, _ := svc.Login(context.Background(), &dto.LoginRequest{Email: "sita@example.com", Password: "secret-pass"})
	if _, err := svc.Refresh(context.Background(), tokens.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("Access Token 不能用于刷新，实际=%v", err)
	}
}

func TestAuthService_Logout_Blacklists(t *testing.T) {
	svc, _, tokens, _ := setupTestAuthService()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(10*time.Minute)); err != nil {
		t.Fatalf("Logout 应成功: %v", err)
	}
	ttl, ok := tokens.revoked["jti-1"]
	if !ok {
		t.Fatal("jti 应加入黑名单")
	}
	if ttl <= 0 || ttl > 10*time.Minute {
		t.Errorf("黑名单 TTL 应为剩余有效期，实际=%s", ttl)
	}
}

// ── Profile 测试 ──

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	user := registerCustomer(t, svc)

	name, phone := "Sita Sharma", "9801234567"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{Name: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProfile 应成功: %v", err)
	}
	if updated.Name != name || updated.Phone != phone {
		t.Errorf("资料未更新: %+v", updated)
	}
}

func TestAuthService_Me_NotFound(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()
	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际=%v", err)
	}
}

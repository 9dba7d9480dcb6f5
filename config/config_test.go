package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Driver: DriverPostgres},
		Auth:     AuthConfig{JWTSecret: "futsal-test-secret-0001"},
		Seed:     SeedConfig{AdminPassword: "Admin@12345"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("期望校验通过，实际: %v", err)
	}
}

func TestValidate_EmptySecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("空 jwt_secret 应校验失败")
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("过短 jwt_secret 应校验失败")
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("端口越界应校验失败")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("未知数据库驱动应校验失败")
	}
}

func TestValidate_SQLiteDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = DriverSQLite
	if err := cfg.Validate(); err != nil {
		t.Errorf("sqlite 驱动应允许，实际: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FUTSAL_AUTH_JWT_SECRET", "env-secret-for-futsal-tests")
	t.Setenv("FUTSAL_SERVER_PORT", "9090")
	t.Setenv("FUTSAL_DB_DRIVER", "sqlite")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("期望 driver=sqlite，实际=%s", cfg.Database.Driver)
	}
	if cfg.Auth.AccessTokenTTL.Minutes() != 30 {
		t.Errorf("期望默认 access_token_ttl=30m，实际=%s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Scheduler.CompletionSpec != "@every 15m" {
		t.Errorf("期望默认 completion_spec，实际=%s", cfg.Scheduler.CompletionSpec)
	}
}

package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"futsal-booking/backend/config"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"}, "svc", "dev"); err == nil {
		t.Error("无效日志级别应返回错误")
	}
}

func TestNewLogger_ServiceFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger, err := NewLogger(
		&config.LogConfig{Level: "info", Format: "json"},
		"futsal-api", "staging",
		zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }),
	)
	if err != nil {
		t.Fatalf("NewLogger 应成功: %v", err)
	}

	logger.Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条日志，实际 %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["service"] != "futsal-api" || ctx["env"] != "staging" {
		t.Errorf("固定字段不正确: %v", ctx)
	}
}

func TestNewLogger_EmptyServiceOmitted(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger, err := NewLogger(
		&config.LogConfig{Level: "debug", Format: "console"}, "", "",
		zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }),
	)
	if err != nil {
		t.Fatalf("NewLogger 应成功: %v", err)
	}

	logger.Debug("hello")
	if ctx := logs.All()[0].ContextMap(); len(ctx) != 0 {
		t.Errorf("未配置时不应附加字段，实际 %v", ctx)
	}
}

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"futsal-booking/backend/config"
)

// NewLogger 根据配置初始化 Zap 日志实例
// service / environment 作为固定字段写入每条日志，与链路追踪的资源属性保持一致
func NewLogger(cfg *config.LogConfig, service, environment string, opts ...zap.Option) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "ts"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("初始化日志器失败: %w", err)
	}

	fields := make([]zap.Field, 0, 2)
	if service != "" {
		fields = append(fields, zap.String("service", service))
	}
	if environment != "" {
		fields = append(fields, zap.String("env", environment))
	}
	return logger.With(fields...), nil
}

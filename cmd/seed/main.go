package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"futsal-booking/backend/config"
	"futsal-booking/backend/internal/repository"
	"futsal-booking/backend/internal/seeder"
	"futsal-booking/backend/pkg/database"
	applogger "futsal-booking/backend/pkg/logger"
)

// 独立的管理员初始化命令，可在部署流水线中执行
// 用法: seed [-config path] [-email x]
// 密码只从配置文件或 FUTSAL_SEED_ADMIN_PASSWORD 读取
func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run 返回进程退出码：0 成功（含管理员已存在），1 运行失败，2 参数错误
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "配置文件路径")
	email := fs.String("email", "", "覆盖 seed.admin_email")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "加载配置失败: %v\n", err)
		return 1
	}
	if *email != "" {
		cfg.Seed.AdminEmail = *email
	}

	logger, err := applogger.NewLogger(&cfg.Log, cfg.Tracing.ServiceName, cfg.Tracing.Environment)
	if err != nil {
		fmt.Fprintf(stderr, "初始化日志失败: %v\n", err)
		return 1
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Error("数据库连接失败", zap.Error(err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("获取底层 sql.DB 失败", zap.Error(err))
		return 1
	}
	defer sqlDB.Close()

	if cfg.Database.Driver == config.DriverSQLite {
		err = database.AutoMigrate(db)
	} else {
		err = database.RunMigrations(sqlDB, logger)
	}
	if err != nil {
		logger.Error("数据库迁移失败", zap.Error(err))
		return 1
	}

	err = seeder.SeedAdmin(context.Background(), repository.NewUserRepo(db), cfg.Seed, logger)
	switch {
	case err == nil:
		logger.Info("管理员账号创建完成", zap.String("email", cfg.Seed.AdminEmail))
	case errors.Is(err, seeder.ErrAdminExists):
		logger.Info("管理员账号已存在", zap.String("email", cfg.Seed.AdminEmail))
	default:
		logger.Error("初始化管理员账号失败", zap.Error(err))
		return 1
	}
	return 0
}

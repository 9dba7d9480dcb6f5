package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"futsal-booking/backend/config"
	"futsal-booking/backend/internal/api/handler"
	"futsal-booking/backend/internal/api/middleware"
	"futsal-booking/backend/internal/api/router"
	"futsal-booking/backend/internal/repository"
	"futsal-booking/backend/internal/scheduler"
	"futsal-booking/backend/internal/seeder"
	"futsal-booking/backend/internal/service"
	"futsal-booking/backend/pkg/database"
	"futsal-booking/backend/pkg/jwt"
	applogger "futsal-booking/backend/pkg/logger"
	"futsal-booking/backend/pkg/mq"
	"futsal-booking/backend/pkg/redis"
	"futsal-booking/backend/pkg/tracing"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("FUTSAL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log, cfg.Tracing.ServiceName, cfg.Tracing.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// 3. 链路追踪（未启用时为空实现）
	shutdownTracing, err := tracing.Init(context.Background(), &cfg.Tracing)
	if err != nil {
		logger.Fatal("初始化链路追踪失败", zap.Error(err))
	}

	// 4. 连接数据库并准备表结构
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	logger.Info("数据库连接成功")

	if err := prepareSchema(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	repo := repository.NewRepository(db)

	// 5. 初始化管理员账号，失败时中止启动
	err = seeder.SeedAdmin(context.Background(), repo.User, cfg.Seed, logger)
	switch {
	case err == nil:
	case errors.Is(err, seeder.ErrAdminExists):
		logger.Info("管理员账号已存在，跳过初始化", zap.String("email", cfg.Seed.AdminEmail))
	case errors.Is(err, seeder.ErrSeedNotConfigured):
		logger.Info("未配置管理员账号，跳过初始化")
	default:
		logger.Fatal("初始化管理员账号失败", zap.Error(err))
	}

	// 6. 可选依赖：Redis 与 RabbitMQ，连接失败时降级运行
	var deps service.Dependencies
	var blacklist middleware.Blacklist
	var limiter middleware.RateLimiter

	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，Token 黑名单、限流与缓存将不可用", zap.Error(err))
	} else {
		deps.Cache = rdb
		deps.Tokens = rdb
		blacklist = rdb
		limiter = rdb
	}

	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			logger.Warn("RabbitMQ 连接失败，预订事件将不会发布", zap.Error(err))
		} else {
			deps.Events = publisher
		}
	}

	// 7. 依赖注入: Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(cfg, repo, jwtMgr, deps, logger)
	h := handler.NewHandler(svc)

	// 8. 定时任务：自动完成过期预订
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(cfg.Scheduler.CompletionSpec, svc.Booking, logger)
		if err != nil {
			logger.Fatal("初始化定时任务失败", zap.Error(err))
		}
		sched.Start()
	}

	// 9. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, blacklist, limiter, logger)

	// 10. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 11. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if sched != nil {
		sched.Stop(ctx)
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Warn("关闭 RabbitMQ 连接失败", zap.Error(err))
		}
	}

	// 关闭数据库连接
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("关闭链路追踪失败", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}

// prepareSchema PostgreSQL 走版本化迁移，SQLite 使用 AutoMigrate
func prepareSchema(db *gorm.DB, driver string, logger *zap.Logger) error {
	if driver == config.DriverSQLite {
		return database.AutoMigrate(db)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	return database.RunMigrations(sqlDB, logger)
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// jobTimeout 单次任务最长执行时间
const jobTimeout = 2 * time.Minute

// BookingCompleter 批量完成过去日期的预订（service.BookingService 实现）
type BookingCompleter interface {
	CompletePast(ctx context.Context) (int, error)
}

// Scheduler 定时任务调度器
type Scheduler struct {
	cron     *cron.Cron
	bookings BookingCompleter
	logger   *zap.Logger
}

// New 创建调度器并注册预订完成任务
// 上一次任务未结束时跳过本次触发
func New(spec string, bookings BookingCompleter, logger *zap.Logger) (*Scheduler, error) {
	cl := cronLogger{l: logger.Sugar()}
	s := &Scheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)), cron.WithLogger(cl)),
		bookings: bookings,
		logger:   logger,
	}
	if _, err := s.cron.AddFunc(spec, s.completeBookings); err != nil {
		return nil, fmt.Errorf("注册定时任务失败 (spec=%q): %w", spec, err)
	}
	return s, nil
}

// Start 启动调度（非阻塞）
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("定时任务已启动", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop 停止调度，等待正在执行的任务结束或 ctx 超时
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("定时任务已停止")
	case <-ctx.Done():
		s.logger.Warn("等待定时任务结束超时")
	}
}

func (s *Scheduler) completeBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	n, err := s.bookings.CompletePast(ctx)
	if err != nil {
		s.logger.Error("预订完成任务失败", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("预订完成任务执行完毕", zap.Int("completed", n), zap.Duration("cost", time.Since(start)))
	}
}

// cronLogger 将 cron 内部日志桥接到 zap
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
